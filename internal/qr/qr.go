// Package qr resolves scanned badge images to survey subjects. Course
// badges carry a payload containing the subject name; Match does a
// case-insensitive substring lookup so payload framing never matters.
package qr

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoCode is returned when an image holds no readable QR code.
var ErrNoCode = fmt.Errorf("no QR code found")

// Decoder extracts the payload of a QR code image.
type Decoder interface {
	Decode(img image.Image) (string, error)
}

// ZXingDecoder decodes QR codes with the zxing port.
type ZXingDecoder struct {
	reader gozxing.Reader
}

// NewDecoder creates a QR decoder.
func NewDecoder() *ZXingDecoder {
	return &ZXingDecoder{reader: qrcode.NewQRCodeReader()}
}

// Decode returns the text payload of the first QR code in img.
func (d *ZXingDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("prepare bitmap: %w", err)
	}
	result, err := d.reader.Decode(bmp, nil)
	if err != nil {
		return "", ErrNoCode
	}
	return result.GetText(), nil
}

// DecodeFile decodes the QR code in an image file.
func (d *ZXingDecoder) DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	return d.Decode(img)
}

// Match resolves a QR payload to a known subject. The payload matches when
// it contains the subject name, case-insensitively. Returns "" when nothing
// matches.
func Match(payload string, subjects []string) string {
	p := strings.ToLower(payload)
	for _, s := range subjects {
		if s == "" {
			continue
		}
		if strings.Contains(p, strings.ToLower(s)) {
			return s
		}
	}
	return ""
}
