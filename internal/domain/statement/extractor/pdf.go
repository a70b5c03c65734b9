package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageText extracts the flattened text of every page of a PDF statement,
// joined with newlines in document order. An empty password opens
// unencrypted documents; statements from institutions that password-protect
// exports need the caller-supplied credential. A wrong or missing password,
// or a structurally broken document, is reported as ErrDocumentUnreadable.
func PageText(data []byte, password string) (text string, err error) {
	// The pdf library panics on some malformed documents; fold those into
	// the same terminal error as a clean failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrDocumentUnreadable, r)
		}
	}()

	reader, err := openPDF(data, password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("%w: document has no pages", ErrDocumentUnreadable)
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if txt := pageTextByRow(page); txt != "" {
			pages = append(pages, txt)
		}
	}

	if len(pages) == 0 {
		// Row extraction found nothing; try the reader-level plain text path.
		if txt := plainText(reader); txt != "" {
			pages = append(pages, txt)
		}
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no extractable text", ErrDocumentUnreadable)
	}
	return strings.Join(pages, "\n"), nil
}

func openPDF(data []byte, password string) (*pdf.Reader, error) {
	r := bytes.NewReader(data)
	size := int64(len(data))
	if password != "" {
		return pdf.NewReaderEncrypted(r, size, func() string { return password })
	}
	return pdf.NewReader(r, size)
}

// pageTextByRow reconstructs lines from positioned text rows, which keeps
// the column structure transaction patterns depend on.
func pageTextByRow(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	var lines []string
	for _, row := range rows {
		var words []string
		for _, word := range row.Content {
			words = append(words, word.S)
		}
		if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func plainText(reader *pdf.Reader) string {
	r, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
