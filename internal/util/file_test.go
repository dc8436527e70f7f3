package util

import (
	"bytes"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestValidateMimeType(t *testing.T) {
	mime, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeImage})
	if err != nil {
		t.Fatalf("png should pass image check: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("detected %q, want image/png", mime)
	}

	if _, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeVideo}); err == nil {
		t.Error("png should fail video check")
	}

	if _, err := ValidateMimeType(bytes.NewReader([]byte("plain text")), []string{MimeImage, MimeVideo}); err == nil {
		t.Error("text should fail media checks")
	}
}

func TestIsImageIsVideo(t *testing.T) {
	if !IsImage("image/jpeg") || IsImage("video/mp4") {
		t.Error("IsImage misclassifies")
	}
	if !IsVideo("video/mp4") || IsVideo("image/png") {
		t.Error("IsVideo misclassifies")
	}
	if !IsVideo("application/x-mpegURL") {
		t.Error("HLS playlists count as video")
	}
}

func TestHasVideoExtension(t *testing.T) {
	for _, ext := range []string{".mp4", ".mkv", ".webm"} {
		if !HasVideoExtension(ext) {
			t.Errorf("%s should be accepted", ext)
		}
	}
	for _, ext := range []string{".pdf", ".txt", "mp4"} {
		if HasVideoExtension(ext) {
			t.Errorf("%s should be rejected", ext)
		}
	}
}

func TestParseUintOrZero(t *testing.T) {
	if got := ParseUintOrZero("42"); got != 42 {
		t.Errorf("ParseUintOrZero(42) = %d", got)
	}
	if got := ParseUintOrZero("abc"); got != 0 {
		t.Errorf("ParseUintOrZero(abc) = %d, want 0", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2025 || d.Month() != 6 || d.Day() != 2 {
		t.Errorf("parsed %v", d)
	}
	if _, err := ParseDate("02/06/2025"); err == nil {
		t.Error("wrong format should error")
	}
}
