package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses permit QR codes. Field inspectors scan
// the code posted at a stall to pull up the registration record.
type QRCodeService interface {
	// GeneratePermitQR renders a PNG QR code identifying a tindahan.
	GeneratePermitQR(tindahanID uuid.UUID) ([]byte, error)

	// ParsePermitQR extracts the tindahan ID from scanned QR payload data.
	ParsePermitQR(qrData string) (uuid.UUID, error)
}
