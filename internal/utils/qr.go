package utils

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the edge length in pixels of generated QR codes.
const DefaultQRSize = 256

// TicketQRPNG renders content as a PNG QR code with medium error
// correction.
func TicketQRPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr content must not be empty")
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
