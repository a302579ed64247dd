package ingestion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads a document and returns its cleaned plain text. The
// container format is chosen by file extension: .txt and .md are read
// directly, .pdf and .docx go through their respective parsers. Any failure
// to obtain text is an *ExtractionError.
func ExtractText(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
		}
		text = string(data)
	case ".pdf":
		text, err = extractPDF(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "failed to parse PDF", Cause: err}
		}
	case ".docx":
		text, err = extractDocx(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "failed to parse DOCX", Cause: err}
		}
	default:
		return "", &ExtractionError{Path: path, Message: "unsupported document format"}
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{Path: path, Message: "document contains no extractable text"}
	}

	return text, nil
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that fail to decode are skipped, not fatal.
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func extractDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
