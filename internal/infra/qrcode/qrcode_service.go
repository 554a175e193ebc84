package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"zumap/internal/domain/constants"
	"zumap/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// invalidIDChars cannot appear in drop IDs (they are database keys).
const invalidIDChars = ".$#[]/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DropID string `json:"drop_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateDropQR generates a QR code that shares a drop
func (s *qrcodeService) GenerateDropQR(dropID string) ([]byte, error) {
	if err := validateDropID(dropID); err != nil {
		return nil, err
	}

	data := QRCodeData{
		DropID: dropID,
		Type:   constants.QRTypeDrop,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + dropID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDropQR parses QR code data and returns the drop ID
func (s *qrcodeService) ParseDropQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != constants.QRTypeDrop {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if err := validateDropID(data.DropID); err != nil {
		return "", err
	}

	return data.DropID, nil
}

func validateDropID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("invalid drop ID: empty")
	}
	if strings.ContainsAny(id, invalidIDChars) {
		return fmt.Errorf("invalid drop ID: %q", id)
	}

	return nil
}
