package util

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/gen2brain/go-fitz"
)

// minTextLayer is the shortest text layer accepted before falling back to OCR.
const minTextLayer = 100

var ErrNoText = errors.New("no text could be extracted")

// ExtractResumeText reads the text of a PDF resume. Scanned documents with
// no usable text layer are run through tesseract when it is installed.
func ExtractResumeText(path string, log logger.Logger) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			log.WithError(err).Warn("page text extraction failed", map[string]interface{}{"page": n + 1})
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if len(text) >= minTextLayer {
		return text, nil
	}

	ocr, err := extractOCR(doc, log)
	if err != nil {
		if text != "" {
			return text, nil
		}
		return "", err
	}
	return ocr, nil
}

func extractOCR(doc *fitz.Document, log logger.Logger) (string, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return "", fmt.Errorf("%w: tesseract not installed", ErrNoText)
	}

	var sb strings.Builder
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: render: %w", n+1, err)
			continue
		}
		pageText, err := ocrImage(img)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.WithError(lastErr).Warn("ocr failed", nil)
			continue
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("%w: %v", ErrNoText, lastErr)
		}
		return "", ErrNoText
	}
	return result, nil
}

func ocrImage(img image.Image) (string, error) {
	tmp, err := os.CreateTemp("", "resume-page-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	out, err := exec.Command("tesseract", tmp.Name(), "stdout", "-l", "eng").Output()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
