// Package identifier turns internal numeric ids into opaque public tokens.
//
// A token is the base64url (unpadded) form of a single AES-128 block:
//
//	magic(2) | kind(1) | reserved(5) | id(8, big endian)
//
// The block key is derived from the configured identifier secret with HKDF-SHA256,
// so tokens are deterministic per secret and cannot be forged or enumerated without it.
package identifier

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"io"

	"phonebook/config"
	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/service"
	"phonebook/internal/errors"

	"golang.org/x/crypto/hkdf"
)

const (
	magic0 = 'P'
	magic1 = 'B'

	keyInfo = "phonebook identifier v1"
)

// Strict rejects tokens whose unused trailing bits are set.
var encoding = base64.RawURLEncoding.Strict()

type aesCodec struct {
	block cipher.Block
}

// NewCodec builds the codec from the identifier secret.
func NewCodec(cfg *config.Config) (service.IdentifierCodec, error) {
	return NewCodecFromSecret(cfg.SecretKey.Identifier)
}

// NewCodecFromSecret builds the codec from a raw secret.
func NewCodecFromSecret(secret string) (service.IdentifierCodec, error) {
	if secret == "" {
		return nil, errors.New("identifier secret must be provided")
	}

	key := make([]byte, 16)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, errors.Wrap(err, "failed to derive identifier key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identifier cipher")
	}

	return &aesCodec{block: block}, nil
}

// Encode implements service.IdentifierCodec.
func (c *aesCodec) Encode(kind entity.Kind, id int64) string {
	var plain, sealed [aes.BlockSize]byte
	plain[0] = magic0
	plain[1] = magic1
	plain[2] = byte(kind)
	binary.BigEndian.PutUint64(plain[8:], uint64(id))

	c.block.Encrypt(sealed[:], plain[:])

	return encoding.EncodeToString(sealed[:])
}

// Decode implements service.IdentifierCodec.
func (c *aesCodec) Decode(token string, expected entity.Kind) (int64, error) {
	if encoding.DecodedLen(len(token)) != aes.BlockSize {
		return 0, domainerrors.ErrMalformedIdentifier
	}

	sealed, err := encoding.DecodeString(token)
	if err != nil || len(sealed) != aes.BlockSize {
		return 0, domainerrors.ErrMalformedIdentifier
	}

	var plain [aes.BlockSize]byte
	c.block.Decrypt(plain[:], sealed)

	if plain[0] != magic0 || plain[1] != magic1 {
		return 0, domainerrors.ErrMalformedIdentifier
	}
	for _, b := range plain[3:8] {
		if b != 0 {
			return 0, domainerrors.ErrMalformedIdentifier
		}
	}

	kind := entity.Kind(plain[2])
	if !kind.IsValid() {
		return 0, domainerrors.ErrMalformedIdentifier
	}
	if kind != expected {
		return 0, domainerrors.ErrMismatchedIdentifierKind
	}

	return int64(binary.BigEndian.Uint64(plain[8:])), nil
}
