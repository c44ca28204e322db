package uuid7

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Compact returns the identifier as 32 hex digits without hyphens
func (id ID) Compact() string {
	if len(id) != canonicalLen {
		return ""
	}
	return string(id[0:hyphen1] + id[hyphen1+1:hyphen2] + id[hyphen2+1:hyphen3] +
		id[hyphen3+1:hyphen4] + id[hyphen4+1:])
}

// ParseCompact parses a 32-digit hex string without hyphens into an ID.
// The re-hyphenated form is validated, so version and variant constraints
// still apply.
func ParseCompact(s string) (ID, error) {
	if len(s) != compactLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	canonical := s[0:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:32]
	return Parse(canonical)
}

// Bytes returns the raw 16-byte representation of the identifier
func (id ID) Bytes() ([]byte, error) {
	if len(id) != canonicalLen {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, string(id))
	}
	b, err := hex.DecodeString(id.Compact())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, string(id))
	}
	return b, nil
}

// FromBytes creates an ID from a raw 16-byte value. The result is rendered
// in lowercase canonical form and validated, so bytes that do not carry
// the version-7/RFC-variant markers are rejected.
func FromBytes(b []byte) (ID, error) {
	if len(b) != rawLen {
		return "", ErrInvalidLength
	}
	var buf [canonicalLen]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[hyphen1] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[hyphen2] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[hyphen3] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[hyphen4] = '-'
	hex.Encode(buf[24:36], b[10:16])
	return Parse(string(buf[:]))
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) ID {
	id, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return id
}

// EncodeToBase64 encodes the identifier's raw bytes to a base64 string
// (URL-safe, no padding)
func (id ID) EncodeToBase64() string {
	b, err := id.Bytes()
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// EncodeToBase64Std encodes the identifier's raw bytes to a standard
// base64 string
func (id ID) EncodeToBase64Std() string {
	b, err := id.Bytes()
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeFromBase64 decodes a base64 string (URL-safe encoding) to an ID
func DecodeFromBase64(s string) (ID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to an ID
func DecodeFromBase64Std(s string) (ID, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return FromBytes(data)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes()
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
