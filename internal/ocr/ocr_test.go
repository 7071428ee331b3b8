package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/cuisinehq/mercuriale/internal/common"
)

// stubRunner fakes the external binaries by command name.
type stubRunner struct {
	stdout map[string]string
	err    map[string]error
	calls  []string
}

func (s *stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.err[name]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(s.stdout[name]), nil, nil
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil).WithRunner(&stubRunner{})

	_, err := e.Extract(context.Background(), "notes.txt", nil)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtract_PDFTextLayer(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{
		"pdftotext": "Tomates kg 2,50 €\fCarottes kg 1,20 €",
	}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	res, err := e.Extract(context.Background(), "mercuriale.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2 (form feed separator)", res.Pages)
	}
	if res.Text != "Tomates kg 2,50 €\nCarottes kg 1,20 €" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Confidence <= 0.2 {
		t.Errorf("currency and units present, confidence = %v", res.Confidence)
	}
}

func TestExtract_PDFUnopenable(t *testing.T) {
	runner := &stubRunner{err: map[string]error{
		"pdftotext": errors.New("exit status 1"),
	}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	// pdftotext fails and the in-process fallback cannot open the path either
	_, err := e.Extract(context.Background(), "missing.pdf", nil)
	if !errors.Is(err, common.ErrUnsupportedDocument) {
		t.Fatalf("expected ErrUnsupportedDocument, got %v", err)
	}
}

func TestExtract_ImageOCR(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{
		"tesseract": "Poireaux botte 1,80 €",
	}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	res, err := e.Extract(context.Background(), "scan.jpg", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != "image-ocr" {
		t.Errorf("method = %q", res.Method)
	}
	if res.Pages != 1 {
		t.Errorf("pages = %d", res.Pages)
	}
	if res.Language != "fra" {
		t.Errorf("language = %q, want default fra", res.Language)
	}
}

func TestExtract_ProgressMonotone(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{
		"tesseract": "Poireaux botte 1,80 €",
	}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	var fractions []float64
	progress := func(_ string, f float64) { fractions = append(fractions, f) }

	if _, err := e.Extract(context.Background(), "scan.png", progress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fractions) == 0 {
		t.Fatal("no progress notifications received")
	}
	for i := 1; i < len(fractions); i++ {
		if fractions[i] < fractions[i-1] {
			t.Errorf("progress went backwards: %v", fractions)
		}
	}
	if last := fractions[len(fractions)-1]; last != 1.0 {
		t.Errorf("final fraction = %v, want 1.0", last)
	}
}
