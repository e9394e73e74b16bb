package qrcode

import (
	"net/url"
	"strconv"

	"ayra/config"
	"ayra/internal/domain/service"
	"ayra/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateLocationQR renders a PNG QR code of the point's geo URI, which map
// apps open directly.
func (s *qrcodeService) GenerateLocationQR(latitude, longitude float64, label string) ([]byte, error) {
	qrCode, err := qrcode.New(GeoURI(latitude, longitude, label), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// GeoURI formats an RFC 5870 geo URI. A non-empty label is attached as the
// query most map apps display, e.g. geo:-23.5505,-46.6333?q=-23.5505,-46.6333(Centro).
func GeoURI(latitude, longitude float64, label string) string {
	point := strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
	uri := "geo:" + point
	if label == "" {
		return uri
	}

	return uri + "?q=" + point + "(" + url.QueryEscape(label) + ")"
}
