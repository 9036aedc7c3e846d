package qrcode

import (
	"testing"

	"phonebook/config"
	"phonebook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testEntry() *entity.Entry {
	return &entity.Entry{
		Name:       "Tom; Jr.",
		City:       "Zagreb",
		Street:     "Ilica 1",
		PostalCode: "10000",
		Country:    "Croatia",
		Type:       entity.EntryTypePersonal,
		Numbers: []*entity.Number{
			{Number: strPtr("0911234567"), Type: entity.NumberTypeMobile},
			{Number: nil, Type: entity.NumberTypeLandline},
			{Number: strPtr("014567890"), Type: entity.NumberTypeLandline},
		},
		Groups: []string{"Friends", "Work,Team"},
	}
}

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}

	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_GenerateEntryCard(t *testing.T) {
	service := NewQRCodeService(256, "M")

	pngBytes, err := service.GenerateEntryCard(testEntry())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])

	_, err = service.GenerateEntryCard(nil)
	assert.Error(t, err)
}

func TestVCard(t *testing.T) {
	card := VCard(testEntry())

	assert.Contains(t, card, "BEGIN:VCARD\r\nVERSION:3.0\r\n")
	assert.Contains(t, card, "FN:Tom\\; Jr.\r\n")
	assert.Contains(t, card, "N:Tom\\; Jr.;;;;\r\n")
	assert.Contains(t, card, "ADR;TYPE=home:;;Ilica 1;Zagreb;;10000;Croatia\r\n")
	assert.Contains(t, card, "TEL;TYPE=cell:0911234567\r\n")
	assert.Contains(t, card, "TEL;TYPE=voice:014567890\r\n")
	assert.Contains(t, card, "CATEGORIES:Friends,Work\\,Team\r\n")
	assert.NotContains(t, card, "ORG:")
	assert.True(t, len(card) > 0 && card[len(card)-len("END:VCARD\r\n"):] == "END:VCARD\r\n")
}

func TestVCard_Enterprise(t *testing.T) {
	entry := testEntry()
	entry.Type = entity.EntryTypeEnterprise
	entry.Groups = nil

	card := VCard(entry)
	assert.Contains(t, card, "ORG:Tom\\; Jr.\r\n")
	assert.Contains(t, card, "ADR;TYPE=work:")
	assert.NotContains(t, card, "CATEGORIES")
}
