package qrcode

import (
	"strings"

	"phonebook/config"
	"phonebook/internal/domain/entity"
	"phonebook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

var vcardEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `;`, `\;`, "\r\n", `\n`, "\n", `\n`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeServiceFromConfig reads size and recovery level from the qrcode section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
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
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEntryCard encodes the entry as a vCard 3.0 QR code PNG
func (s *qrcodeService) GenerateEntryCard(entry *entity.Entry) ([]byte, error) {
	if entry == nil {
		return nil, errors.New("entry is required")
	}

	qrCode, err := qrcode.New(VCard(entry), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// VCard renders the entry in vCard 3.0 format
func VCard(entry *entity.Entry) string {
	var b strings.Builder
	line := func(parts ...string) {
		for _, part := range parts {
			b.WriteString(part)
		}
		b.WriteString("\r\n")
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("FN:", vcardEscaper.Replace(entry.Name))
	if entry.Type == entity.EntryTypeEnterprise {
		line("ORG:", vcardEscaper.Replace(entry.Name))
	} else {
		line("N:", vcardEscaper.Replace(entry.Name), ";;;;")
	}
	// ADR: PO box; extended; street; locality; region; postal code; country
	line("ADR;TYPE=", addressType(entry.Type), ":;;",
		vcardEscaper.Replace(entry.Street), ";",
		vcardEscaper.Replace(entry.City), ";;",
		vcardEscaper.Replace(entry.PostalCode), ";",
		vcardEscaper.Replace(entry.Country))
	for _, number := range entry.Numbers {
		if number == nil || number.Number == nil || *number.Number == "" {
			continue
		}
		line("TEL;TYPE=", telephoneType(number.Type), ":", vcardEscaper.Replace(*number.Number))
	}
	if len(entry.Groups) > 0 {
		groups := make([]string, 0, len(entry.Groups))
		for _, group := range entry.Groups {
			groups = append(groups, vcardEscaper.Replace(group))
		}
		line("CATEGORIES:", strings.Join(groups, ","))
	}
	line("END:VCARD")

	return b.String()
}

func addressType(t entity.EntryType) string {
	if t == entity.EntryTypeEnterprise {
		return "work"
	}

	return "home"
}

func telephoneType(t entity.NumberType) string {
	if t == entity.NumberTypeMobile {
		return "cell"
	}

	return "voice"
}
