// Package ingestion loads job postings into the corpus: text cleaning,
// HTML body extraction, and bulk directory ingestion.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	multiSpaceRE = regexp.MustCompile(`[ \t]+`)
	multiBlankRE = regexp.MustCompile(`\n\n\n+`)
	controlRE    = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
)

// CleanText normalizes posting text while preserving line structure:
// line endings become LF, control characters are dropped, runs of spaces
// collapse to one, and blank-line runs collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlRE.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(multiSpaceRE.ReplaceAllString(line, " "), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRE.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// ReadPosting reads a posting file and returns its cleaned text. HTML files
// are stripped to their main body text first.
func ReadPosting(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read posting %s: %w", path, err)
	}

	text := string(content)
	if isHTMLFile(path) || looksLikeHTML(text) {
		text, err = ExtractText(text)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}
	return CleanText(text), nil
}

func isHTMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

func looksLikeHTML(content string) bool {
	head := strings.ToLower(content)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
