package qr

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

func encodeQR(t *testing.T, payload string) image.Image {
	t.Helper()

	matrix, err := qrcode.NewQRCodeWriter().Encode(payload, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("encode QR: %v", err)
	}

	img := image.NewGray(image.Rect(0, 0, matrix.GetWidth(), matrix.GetHeight()))
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestDecoder_Roundtrip(t *testing.T) {
	img := encodeQR(t, "CAMPULSE:SUBJECT:Réseaux")

	got, err := NewDecoder().Decode(img)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "CAMPULSE:SUBJECT:Réseaux" {
		t.Fatalf("payload = %q", got)
	}
}

func TestDecoder_NoCode(t *testing.T) {
	blank := image.NewGray(image.Rect(0, 0, 64, 64))

	_, err := NewDecoder().Decode(blank)
	if err != ErrNoCode {
		t.Fatalf("expected ErrNoCode, got %v", err)
	}
}

func TestDecodeFile_Roundtrip(t *testing.T) {
	img := encodeQR(t, "badge Algorithmique 2026")

	path := filepath.Join(t.TempDir(), "capture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := NewDecoder().DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if got != "badge Algorithmique 2026" {
		t.Fatalf("payload = %q", got)
	}
}

func TestMatch(t *testing.T) {
	subjects := []string{"Réseaux", "Algorithmique", "Bases de Données"}

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"exact", "Réseaux", "Réseaux"},
		{"framed", "CAMPULSE:SUBJECT:Algorithmique:2026", "Algorithmique"},
		{"case insensitive", "badge ALGORITHMIQUE", "Algorithmique"},
		{"multi word", "salle B2 - Bases de Données", "Bases de Données"},
		{"unknown", "Chimie Organique", ""},
		{"empty payload", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.payload, subjects); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestMatch_IgnoresEmptySubject(t *testing.T) {
	if got := Match("anything", []string{""}); got != "" {
		t.Fatalf("empty subject must never match, got %q", got)
	}
}

func TestDirSource_SkipsPreexisting(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "old.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewDirSource(dir)
	if err != nil {
		t.Fatalf("NewDirSource failed: %v", err)
	}
	defer s.Close()

	path, err := s.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if path != "" {
		t.Fatalf("pre-existing capture should be skipped, got %q", path)
	}
}

func TestDirSource_PicksUpNewCapturesOnce(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirSource(dir)
	if err != nil {
		t.Fatalf("NewDirSource failed: %v", err)
	}
	defer s.Close()

	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(first) != "a.png" {
		t.Fatalf("first = %q, want a.png", first)
	}

	second, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(second) != "b.jpg" {
		t.Fatalf("second = %q, want b.jpg", second)
	}

	third, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if third != "" {
		t.Fatalf("captures must not replay, got %q", third)
	}
}

func TestDirSource_ClosedReturnsError(t *testing.T) {
	s, err := NewDirSource(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error after Close")
	}
}
