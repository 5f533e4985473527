package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// Text pulls plain text out of an uploaded document. PDFs are read page by
// page with failing pages contributing an empty string; plain text is decoded
// as UTF-8. Any other or missing payload yields "". Never returns an error:
// unreadable input degrades to empty text so the surrounding flow continues.
func Text(data []byte, mimeType string) string {
	if len(data) == 0 {
		return ""
	}
	switch normalizeMime(mimeType) {
	case MimePDF:
		return pdfText(data)
	case MimeText:
		if !utf8.Valid(data) {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// normalizeMime strips parameters like "; charset=utf-8".
func normalizeMime(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

func pdfText(data []byte) (text string) {
	// The pdf library panics on some malformed files; the extractor contract
	// is empty text, never a crash.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// One bad page never aborts the document.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n")
}
