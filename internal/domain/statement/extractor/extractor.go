// Package extractor turns raw statement documents into RawRows (for
// spreadsheet and delimited-text sources) or flattened page text (for PDF
// sources). Extraction failures here are document-level and terminal for
// a pipeline run; row-shaped oddities are left for the canonicalizers to
// skip.
package extractor

import "errors"

var (
	// ErrNoSheets reports a workbook with no usable worksheet.
	ErrNoSheets = errors.New("no sheets found")
	// ErrDocumentUnreadable reports a structurally unreadable document or
	// a missing/incorrect decryption credential.
	ErrDocumentUnreadable = errors.New("document unreadable/wrong credential")
)
