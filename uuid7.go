package uuid7

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// ID is a validated UUIDv7 in its canonical 36-character textual form
// (xxxxxxxx-xxxx-7xxx-yxxx-xxxxxxxxxxxx, y in [8,b]). An ID can only be
// obtained through the validating entry points (New, NewBatch, Parse,
// TryParse, MustParse, FromBytes and the decoding functions), so a
// non-zero ID is always structurally valid.
//
// The zero value ID("") is not a valid identifier; TryParse returns it as
// the absent marker.
type ID string

const (
	canonicalLen = 36
	compactLen   = 32
	rawLen       = 16
)

// hyphen positions within the canonical form
const (
	hyphen1 = 8
	hyphen2 = 13
	hyphen3 = 18
	hyphen4 = 23

	versionPos = 14
	variantPos = 19
)

// String returns the identifier text exactly as it was validated.
// Case is preserved from the original input.
func (id ID) String() string {
	return string(id)
}

// IsValid reports whether s matches the canonical UUIDv7 layout: 36
// characters, hyphens at positions 8/13/18/23, version nibble fixed to 7,
// variant nibble in {8,9,a,b} and hex digits everywhere else. Hex digits
// may be upper or lower case. It never panics.
//
// Validity is purely structural; the embedded timestamp is not checked for
// temporal plausibility.
func IsValid(s string) bool {
	if len(s) != canonicalLen {
		return false
	}
	if s[hyphen1] != '-' || s[hyphen2] != '-' || s[hyphen3] != '-' || s[hyphen4] != '-' {
		return false
	}
	if s[versionPos] != '7' {
		return false
	}
	switch s[variantPos] {
	case '8', '9', 'a', 'b', 'A', 'B':
	default:
		return false
	}
	for i := 0; i < canonicalLen; i++ {
		switch i {
		case hyphen1, hyphen2, hyphen3, hyphen4:
			continue
		}
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// isHexDigit reports whether c is a hexadecimal digit in either case
func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Parse validates s against the canonical UUIDv7 layout and returns it
// typed as an ID. The text is not normalized; upper-case hex digits are
// accepted and preserved. On failure the error wraps ErrInvalidFormat and
// quotes the rejected value.
func Parse(s string) (ID, error) {
	if !IsValid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return ID(s), nil
}

// TryParse is like Parse but never fails: it returns the typed value and
// true on success, or the zero ID and false on failure. Nothing is raised
// or logged.
func TryParse(s string) (ID, bool) {
	if !IsValid(s) {
		return "", false
	}
	return ID(s), true
}

// MustParse is like Parse but panics if the string is not a valid UUIDv7.
// It simplifies safe initialization of global variables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid7: Parse(%q): %v", s, err))
	}
	return id
}

// Timestamp returns the identifier's embedded Unix timestamp in
// milliseconds. The 48-bit value occupies the first two hex groups
// (character positions [0,8) and [9,13)).
//
// Timestamp trusts the ID's structural validity and does not re-validate;
// for text of the wrong length it returns 0.
func (id ID) Timestamp() int64 {
	if len(id) != canonicalLen {
		return 0
	}
	ms, err := strconv.ParseUint(string(id[0:hyphen1]+id[hyphen1+1:hyphen2]), 16, 64)
	if err != nil {
		return 0
	}
	return int64(ms)
}

// Time returns the identifier's embedded timestamp as a time.Time
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp())
}

// Version returns the identifier's version nibble (always 7 for a valid
// ID). It returns -1 for text of the wrong length.
func (id ID) Version() int {
	if len(id) != canonicalLen {
		return -1
	}
	return int(hexNibble(id[versionPos]))
}

// hexNibble converts one hex digit to its value. Callers guarantee c is a
// hex digit.
func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// Compare returns an integer comparing two identifiers byte-wise over
// their textual forms. The result is 0 if id==other, -1 if id sorts before
// other, and +1 if after.
//
// Because the timestamp occupies the most significant, leftmost positions
// of the fixed-width form, this order coincides with chronological order.
// Identifiers sharing a millisecond sort by their random bits, which carry
// no temporal meaning, so equal-timestamp order is arbitrary rather than
// true creation order.
func (id ID) Compare(other ID) int {
	for i := 0; i < len(id) && i < len(other); i++ {
		if id[i] < other[i] {
			return -1
		}
		if id[i] > other[i] {
			return 1
		}
	}
	switch {
	case len(id) < len(other):
		return -1
	case len(id) > len(other):
		return 1
	}
	return 0
}

// Equal returns true if id and other are textually identical
func (id ID) Equal(other ID) bool {
	return id == other
}

// IsZero returns true if id is the zero (empty) ID
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalText implements the encoding.TextMarshaler interface.
// It also serves json.Marshal.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The incoming text is validated, so decoding cannot produce an invalid ID.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// String and []byte sources are validated; a NULL source leaves the ID
// untouched.
func (id *ID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		parsed, err := Parse(src)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == rawLen {
			parsed, err := FromBytes(src)
			if err != nil {
				return err
			}
			*id = parsed
			return nil
		}
		parsed, err := Parse(string(src))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("uuid7: cannot scan type %T into ID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (id ID) Value() (driver.Value, error) {
	return string(id), nil
}
