package export

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the PNG edge length in pixels.
const DefaultQRSize = 256

// ShareLink is the dashboard URL of a company's project page.
func ShareLink(baseURL string, companyID int) string {
	return fmt.Sprintf("%s/admin/project/%d", strings.TrimRight(baseURL, "/"), companyID)
}

// QRCode encodes content as a PNG QR code.
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}
