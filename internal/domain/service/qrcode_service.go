package service

// QRCodeService defines the interface for drop share code generation and parsing
type QRCodeService interface {
	// GenerateDropQR generates a PNG QR code pointing at a drop
	GenerateDropQR(dropID string) ([]byte, error)

	// ParseDropQR parses QR code data and returns the drop ID
	ParseDropQR(qrData string) (string, error)
}
