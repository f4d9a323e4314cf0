package qrcode

import (
	"testing"

	"saathi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{QRCode: &config.QRCodeConfig{
				Size:                 tt.size,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			}}
			assert.NotNil(t, NewQRCodeService(cfg))
		})
	}
}

func TestQRCodeService_Generate(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}}
	svc := NewQRCodeService(cfg)

	qrBytes, err := svc.Generate("https://pmkisan.gov.in/")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_Generate_NoConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	qrBytes, err := svc.Generate("https://pmfby.gov.in/")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
