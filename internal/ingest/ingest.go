// Package ingest reads an article from disk: plain text is normalized for
// the engine, and PDF inputs are inspected for page count and metadata
// only (no OCR, no text extraction).
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	pdfcpuapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Result is what Read hands back to the caller.
type Result struct {
	Text string // newline-normalized article text, empty for a PDF source
	PDF  *PDFInfo
}

// PDFInfo is the metadata ingest can pull from a PDF without extracting
// its text: the pipeline's PDF support stops at page count, since pdfcpu's
// content-stream reader yields raw PDF operators rather than decoded text.
type PDFInfo struct {
	PageCount int
}

// Read loads path, retrying transient I/O errors (e.g. the file briefly
// held open by another writer), and normalizes CRLF/CR to LF for plain-text
// input.
func Read(path string) (*Result, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		info, err := readPDFInfo(path)
		if err != nil {
			return nil, err
		}
		return &Result{PDF: info}, nil
	}

	var raw []byte
	err := retry.Do(
		func() error {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			raw = b
			return nil
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Result{Text: Normalize(string(raw))}, nil
}

// Normalize folds CRLF and lone CR into LF, the line ending the engine's
// cursor arithmetic assumes.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func readPDFInfo(path string) (*PDFInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	count, err := pdfcpuapi.PageCount(f, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF metadata from %s: %w", path, err)
	}
	return &PDFInfo{PageCount: count}, nil
}
