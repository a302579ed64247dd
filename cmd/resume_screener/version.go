package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the resume_screener version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("resume_screener %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
