package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	for _, ext := range []string{"pdf", ".PDF", "jpg", "jpeg", ".png"} {
		if !AllowedExt(ext) {
			t.Errorf("%q should be allowed", ext)
		}
	}
	for _, ext := range []string{"heic", "docx", "", ".txt"} {
		if AllowedExt(ext) {
			t.Errorf("%q should be rejected", ext)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/scans/.archive") {
		t.Error("dotted basename is hidden")
	}
	if IsHidden("/scans/mercuriale.pdf") {
		t.Error("regular file is not hidden")
	}
}
