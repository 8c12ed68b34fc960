package rewrite

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sdko-org/website-generator/internal/storage"
	"golang.org/x/net/html"
)

//go:embed overlay.js
var overlayJS string

const faviconLink = `<link rel="icon" type="image/svg+xml" href="/favicon.svg">`

type overlayMetadata struct {
	storage.Metadata
	Date string `json:"date"`
}

// InjectMetadata streams the generated HTML to w, appending a favicon link as
// the last child of <head> and the metadata overlay script as the last child
// of <body>. Every other byte passes through untouched. Generated markup is
// arbitrary and often broken; a missing head or body simply skips that
// injection, it never fails the request.
func InjectMetadata(w io.Writer, source string, date string, metadata storage.Metadata) error {
	script, err := overlayScript(date, metadata)
	if err != nil {
		return err
	}

	z := html.NewTokenizer(strings.NewReader(source))
	headDone := false
	bodyDone := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("html tokenization failed: %w", err)
			}
			return nil
		}

		if tt == html.EndTagToken {
			name, _ := z.TagName()
			switch string(name) {
			case "head":
				if !headDone {
					if _, err := io.WriteString(w, faviconLink); err != nil {
						return err
					}
					headDone = true
				}
			case "body":
				if !bodyDone {
					if _, err := io.WriteString(w, script); err != nil {
						return err
					}
					bodyDone = true
				}
			}
		}

		if _, err := w.Write(z.Raw()); err != nil {
			return err
		}
	}
}

func overlayScript(date string, metadata storage.Metadata) (string, error) {
	payload, err := json.MarshalIndent(overlayMetadata{Metadata: metadata, Date: date}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode overlay metadata: %w", err)
	}

	body := strings.Replace(overlayJS, "__METADATA_JSON__", string(payload), 1)
	return `<script id="generation-metadata">` + "\n" + body + "</script>", nil
}
