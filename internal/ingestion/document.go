package ingestion

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted for uploaded resumes.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// TypeByExtension maps a document path to the MIME type ExtractText
// understands, defaulting to plain text.
func TypeByExtension(path string) string {
	switch {
	case strings.HasSuffix(path, ".pdf"):
		return MIMEPDF
	case strings.HasSuffix(path, ".docx"):
		return MIMEDocx
	default:
		return MIMEPlainText
	}
}

// ExtractText extracts the plain text of an uploaded document according
// to its content type. An empty or whitespace-only result is reported as
// ErrNoText so the caller can abandon the unit of work instead of
// writing a hollow profile.
func ExtractText(contentType string, data []byte) (string, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	var (
		text string
		err  error
	)
	switch mediaType {
	case MIMEPlainText, "":
		text = string(data)
	case MIMEPDF:
		text, err = extractPDFText(data)
	case MIMEDocx:
		text, err = extractDocxText(data)
	default:
		return "", &UnsupportedTypeError{ContentType: contentType}
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripXMLTags(doc.Editable().GetContent()), nil
}

// stripXMLTags flattens WordprocessingML markup into plain text,
// inserting line breaks at paragraph boundaries.
func stripXMLTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
