package ingestion

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// fetchTimeout bounds a single job-posting fetch.
const fetchTimeout = 30 * time.Second

// FetchFromURL downloads a job posting page and returns its cleaned visible
// text, with script, style, and navigation noise stripped.
func FetchFromURL(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &ExtractionError{Path: url, Message: "invalid URL", Cause: err}
	}
	req.Header.Set("User-Agent", "resume-screener/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &ExtractionError{Path: url, Message: "failed to fetch URL", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &ExtractionError{Path: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &ExtractionError{Path: url, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer").Remove()
	text := CleanText(doc.Find("body").Text())
	if text == "" {
		return "", &ExtractionError{Path: url, Message: "page contains no extractable text"}
	}

	return text, nil
}
