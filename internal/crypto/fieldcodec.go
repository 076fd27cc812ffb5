package crypto

import (
	"log"
	"strings"
)

// Field describes one encrypted attribute of a record about to cross
// the storage boundary. Value points at the column being sealed or
// opened; Hash, when non-nil, points at the paired blind-index column.
type Field struct {
	Name  string
	Value *string
	Hash  *string
}

// FieldCodec is the persistence-boundary layer for encrypted
// attributes. Repositories call Seal before every write and Open after
// every read; nothing else in the application touches envelopes.
type FieldCodec struct {
	cipher *Cipher
}

func NewFieldCodec(c *Cipher) *FieldCodec {
	return &FieldCodec{cipher: c}
}

// Seal converts each field value to envelope form and refreshes the
// paired blind index from the logical (plaintext) value.
//
// Values that are already valid envelopes pass through unchanged, so
// re-saving a previously loaded record never double-encrypts. Detection
// is heuristic: exactly one colon separator and a successful decrypt.
// A plaintext that merely looks like an envelope but fails to decrypt
// is treated as plaintext and encrypted, favoring write availability
// over strict classification.
func (fc *FieldCodec) Seal(fields []Field) error {
	for _, f := range fields {
		v := *f.Value
		if v == "" {
			if f.Hash != nil {
				*f.Hash = ""
			}
			continue
		}

		logical := v
		envelope := ""
		if strings.Count(v, ":") == 1 {
			if pt, err := fc.cipher.Decrypt(v); err == nil {
				logical = pt
				envelope = v
			}
		}

		if envelope == "" {
			enc, err := fc.cipher.Encrypt(v)
			if err != nil {
				return err
			}
			envelope = enc
		}

		*f.Value = envelope
		if f.Hash != nil {
			// Always derived from the plaintext, never the envelope.
			*f.Hash = BlindIndex(logical)
		}
	}
	return nil
}

// Open decrypts each field value in place. An undecryptable value is
// cleared and logged rather than failing the whole read; the first such
// error is returned so callers can flag the record.
func (fc *FieldCodec) Open(fields []Field) error {
	var firstErr error
	for _, f := range fields {
		pt, err := fc.cipher.Decrypt(*f.Value)
		if err != nil {
			log.Printf("failed to open field %s: %v", f.Name, err)
			*f.Value = ""
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		*f.Value = pt
	}
	return firstErr
}
