// Package qrcode generates reservation check-in QR codes.
package qrcode

import (
	"encoding/json"

	"storehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload encoded into a reservation QR code
type QRCodeData struct {
	StoreID       string `json:"store_id"`
	ReservationID string `json:"reservation_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

// GenerateReservationQR encodes a store/reservation pair as a PNG QR code
func (s *qrcodeService) GenerateReservationQR(storeID, reservationID string) ([]byte, error) {
	data := QRCodeData{
		StoreID:       storeID,
		ReservationID: reservationID,
		Type:          "reservation-checkin",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "generate PNG")
	}

	return pngBytes, nil
}
