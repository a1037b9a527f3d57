package imagepkg

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// qrModulePixels is the side of one QR module in MakeQR output.
const qrModulePixels = 10

// MakeQR encodes data at the lowest error correction level as black modules
// on white with the standard 4-module quiet zone. The image is square and its
// size depends only on data.
func MakeQR(data []byte) (image.Image, error) {
	q, err := qrcode.New(string(data), qrcode.Low)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = color.Black
	q.BackgroundColor = color.White
	return q.Image(-qrModulePixels), nil
}

// GenerateQRPNG returns PNG bytes of a size x size QR code for text, at the
// same error correction level as MakeQR.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}
