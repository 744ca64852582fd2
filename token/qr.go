package token

import (
	qrcode "github.com/skip2/go-qrcode"
)

// RenderPNG draws the payload's wire form as a QR code image. The image is
// just one transport for the payload; the JSON bytes remain the contract.
func RenderPNG(p Payload, size int) ([]byte, error) {
	data, err := Marshal(p)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, size)
}
