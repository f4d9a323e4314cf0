package service

// QRCodeService renders a QR code PNG for a piece of text, used for scheme
// application links so farmers can scan them from another device.
type QRCodeService interface {
	Generate(content string) ([]byte, error)
}
