package entity

// Kind identifies which entity an external identifier points at.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindEntry
	KindNumber
	KindGroup
	KindRating
)

// String returns the public name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "PhonebookEntry"
	case KindNumber:
		return "PhonebookNumber"
	case KindGroup:
		return "PhonebookGroup"
	case KindRating:
		return "PhonebookRating"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k names a real entity kind.
func (k Kind) IsValid() bool {
	return k >= KindEntry && k <= KindRating
}
