package service

import "phonebook/internal/domain/entity"

// IdentifierCodec converts internal numeric ids into opaque external tokens and back.
type IdentifierCodec interface {
	// Encode returns the token for the given kind and id. Equal inputs give equal tokens.
	Encode(kind entity.Kind, id int64) string

	// Decode returns the id behind token. It fails with ErrMalformedIdentifier when token is not
	// a token at all and with ErrMismatchedIdentifierKind when it names another kind.
	Decode(token string, expected entity.Kind) (int64, error)
}
