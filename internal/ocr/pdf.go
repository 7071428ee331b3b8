package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/internal/common"
)

// extractPDF tries strategies in order: text layer via pdftotext, in-process
// text layer, then rasterize+OCR for scanned documents. A PDF that every
// strategy fails to open is reported as ErrUnsupportedDocument.
func (e *Extractor) extractPDF(ctx context.Context, path string, progress ProgressFunc) (ExtractionResult, error) {
	notify(progress, "extraction", 0.1)

	text, pages, warns, err := e.pdfToText(ctx, path)
	method := "pdf-text"
	if err != nil {
		e.logger.Warn("pdftotext unavailable, falling back to in-process reader", "path", path, "error", err)
		text, pages, err = pdfPlainText(path)
		method = "pdf-fallback"
		if err != nil {
			return ExtractionResult{SourceType: constants.PDF, Warnings: warns},
				fmt.Errorf("%w: %v", common.ErrUnsupportedDocument, err)
		}
	}

	// A present-but-empty text layer usually means a scanned document;
	// rasterize and OCR page by page.
	if strings.TrimSpace(text) == "" {
		e.logger.Info("pdf has no text layer, running ocr", "path", path)
		ocrText, ocrPages, ocrWarns, ocrErr := e.pdfToOCR(ctx, path, progress)
		warns = append(warns, ocrWarns...)
		if ocrErr != nil {
			return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, ocrErr
		}
		notify(progress, "extraction", 1.0)
		return ExtractionResult{
			Text:       ocrText,
			Pages:      ocrPages,
			SourceType: constants.PDF,
			Method:     "pdf-ocr",
			Language:   e.cfg.TesseractLang,
			Warnings:   warns,
			Confidence: heuristicConfidence(ocrText),
		}, nil
	}

	notify(progress, "extraction", 1.0)
	return ExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     method,
		Warnings:   warns,
		Confidence: heuristicConfidence(text),
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default; pages are joined
	// with a plain newline downstream.
	pages = 1 + strings.Count(text, "\f")
	text = strings.ReplaceAll(text, "\f", "\n")
	return text, pages, nil, nil
}

// pdfPlainText reads the text layer without any external binary, page by
// page in document order, pages joined by a newline.
func pdfPlainText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Printf("warning: failed to close pdf %q: %v\n", path, cerr)
		}
	}()

	var b strings.Builder
	pages := 0
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		pages++
	}
	if pages == 0 {
		return "", 0, fmt.Errorf("no readable pages")
	}
	return b.String(), pages, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string, progress ProgressFunc) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "mercuriale-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			fmt.Printf("warning: failed to remove temp dir %q: %v\n", path, err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("%w: %v", common.ErrUnsupportedDocument, err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("%w: no pages rendered", common.ErrUnsupportedDocument)
	}

	var b strings.Builder
	var warns []string
	for i, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		warns = append(warns, w...)
		// 0.2..0.9 across the page loop, never decreasing
		notify(progress, "ocr", 0.2+0.7*float64(i+1)/float64(len(matches)))
	}
	pages = len(matches)
	return b.String(), pages, warns, nil
}
