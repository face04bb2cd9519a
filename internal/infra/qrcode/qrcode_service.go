// Package qrcode renders permit QR codes as PNG images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bantay/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	TindahanID string `json:"tindahan_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePermitQR generates a QR code for a tindahan's business permit
func (s *qrcodeService) GeneratePermitQR(tindahanID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		TindahanID: tindahanID.String(),
		Type:       "permit",
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

// ParsePermitQR parses QR code data and returns the tindahan ID
func (s *qrcodeService) ParsePermitQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "permit" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	tindahanID, err := uuid.Parse(data.TindahanID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse tindahan ID: %w", err)
	}

	return tindahanID, nil
}
