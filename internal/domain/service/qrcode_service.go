package service

import "phonebook/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateEntryCard renders the entry as a vCard and returns it encoded as a PNG QR code
	GenerateEntryCard(entry *entity.Entry) ([]byte, error)
}
