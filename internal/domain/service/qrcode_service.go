package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateLocationQR returns a PNG QR code encoding a geo URI for the point.
	GenerateLocationQR(latitude, longitude float64, label string) ([]byte, error)
}
