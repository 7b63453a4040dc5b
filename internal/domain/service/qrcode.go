package service

// QRCodeService generates QR codes for reservation check-in.
type QRCodeService interface {
	// GenerateReservationQR encodes a store/reservation pair as a PNG QR code
	GenerateReservationQR(storeID, reservationID string) ([]byte, error)
}
