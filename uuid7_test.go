package uuid7

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

const knownID = "01923f4a-7b3d-7123-8456-426614174000"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "canonical lowercase",
			input:   "01923f4a-7b3d-7123-8456-426614174000",
			wantErr: false,
		},
		{
			name:    "canonical uppercase hex",
			input:   "01923F4A-7B3D-7123-8456-426614174000",
			wantErr: false,
		},
		{
			name:    "mixed case hex",
			input:   "01923f4A-7b3D-7123-a456-426614174Fff",
			wantErr: false,
		},
		{
			name:    "variant nibble 9",
			input:   "01923f4a-7b3d-7123-9456-426614174000",
			wantErr: false,
		},
		{
			name:    "variant nibble b",
			input:   "01923f4a-7b3d-7123-b456-426614174000",
			wantErr: false,
		},
		{
			name:    "not a uuid",
			input:   "not-a-uuid",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "01923f4a-7b3d-7123-8456",
			wantErr: true,
		},
		{
			name:    "without hyphens",
			input:   "01923f4a7b3d71238456426614174000",
			wantErr: true,
		},
		{
			name:    "wrong hyphen position",
			input:   "01923f4a7b3d-7123-8456-4266141740-00",
			wantErr: true,
		},
		{
			name:    "invalid hex digit",
			input:   "01923g4a-7b3d-7123-8456-426614174000",
			wantErr: true,
		},
		{
			name:    "version nibble 4",
			input:   "01923f4a-7b3d-4123-8456-426614174000",
			wantErr: true,
		},
		{
			name:    "variant nibble c",
			input:   "01923f4a-7b3d-7123-c456-426614174000",
			wantErr: true,
		},
		{
			name:    "variant nibble 0",
			input:   "01923f4a-7b3d-7123-0456-426614174000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("Parse() error = %v, want ErrInvalidFormat", err)
				}
				if !strings.Contains(err.Error(), tt.input) {
					t.Errorf("Parse() error %q does not quote input %q", err, tt.input)
				}
				return
			}
			// Round-trip: the text comes back exactly as given, case included
			if id.String() != tt.input {
				t.Errorf("Parse() = %q, want %q", id, tt.input)
			}
			if !IsValid(id.String()) {
				t.Errorf("IsValid(Parse(%q)) = false, want true", tt.input)
			}
		})
	}
}

func TestTryParse(t *testing.T) {
	id, ok := TryParse(knownID)
	if !ok {
		t.Fatalf("TryParse(%q) = false, want true", knownID)
	}
	if id.String() != knownID {
		t.Errorf("TryParse() = %q, want %q", id, knownID)
	}

	id, ok = TryParse("not-a-uuid")
	if ok {
		t.Error("TryParse() = true for invalid input")
	}
	if !id.IsZero() {
		t.Errorf("TryParse() = %q for invalid input, want zero ID", id)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase", "01923f4a-7b3d-7123-8456-426614174000", true},
		{"valid uppercase", "01923F4A-7B3D-7123-B456-426614174000", true},
		{"not a uuid", "not-a-uuid", false},
		{"version nibble 4", "01923f4a-7b3d-4123-8456-426614174000", false},
		{"variant nibble c", "01923f4a-7b3d-7123-c456-426614174000", false},
		{"too short", "01923f4a-7b3d-7123-8456", false},
		{"too long", "01923f4a-7b3d-7123-8456-426614174000ff", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	id := MustParse(knownID)
	if id.IsZero() {
		t.Error("MustParse() returned zero ID")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}

func TestID_Timestamp(t *testing.T) {
	id := MustParse(knownID)

	want := int64(0x01923f4a7b3d)
	if got := id.Timestamp(); got != want {
		t.Errorf("Timestamp() = %v, want %v", got, want)
	}

	if got := id.Time(); !got.Equal(time.UnixMilli(want)) {
		t.Errorf("Time() = %v, want %v", got, time.UnixMilli(want))
	}
}

func TestID_Timestamp_UppercaseHex(t *testing.T) {
	lower := MustParse("01923f4a-7b3d-7123-8456-426614174000")
	upper := MustParse("01923F4A-7B3D-7123-8456-426614174000")

	if lower.Timestamp() != upper.Timestamp() {
		t.Errorf("Timestamp() differs by case: %v vs %v", lower.Timestamp(), upper.Timestamp())
	}
}

func TestID_Timestamp_WrongLength(t *testing.T) {
	// A force-converted short string is out of contract; Timestamp stays defensive
	if got := ID("short").Timestamp(); got != 0 {
		t.Errorf("Timestamp() = %v for invalid text, want 0", got)
	}
	if got := ID("short").Version(); got != -1 {
		t.Errorf("Version() = %v for invalid text, want -1", got)
	}
}

func TestID_Version(t *testing.T) {
	if got := MustParse(knownID).Version(); got != 7 {
		t.Errorf("Version() = %v, want 7", got)
	}
}

func TestID_Compare(t *testing.T) {
	// Earlier 48-bit timestamp sorts first regardless of trailing bits
	a := MustParse("01923f4a-7b3c-7fff-bfff-ffffffffffff")
	b := MustParse("01923f4a-7b3d-7000-8000-000000000000")

	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare(a, b) = %v, want -1", got)
	}
	if got := b.Compare(a); got != 1 {
		t.Errorf("Compare(b, a) = %v, want 1", got)
	}
	if got := a.Compare(a); got != 0 {
		t.Errorf("Compare(a, a) = %v, want 0", got)
	}

	if a.Timestamp() >= b.Timestamp() {
		t.Fatal("test fixture broken: a's timestamp should precede b's")
	}
}

func TestID_Compare_MatchesTimestampOrder(t *testing.T) {
	gen := NewGenerator()

	a, err := gen.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	b, err := gen.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if a.Timestamp() < b.Timestamp() && a.Compare(b) != -1 {
		t.Errorf("Compare() = %v for earlier identifier, want -1", a.Compare(b))
	}
}

func TestID_Equal(t *testing.T) {
	a := MustParse(knownID)
	b := MustParse(knownID)
	c := MustParse("01923f4a-7b3d-7123-9456-426614174000")

	if !a.Equal(b) {
		t.Error("a should equal b")
	}
	if a.Equal(c) {
		t.Error("a should not equal c")
	}

	// Equality is textual: differing case is a different ID
	upper := MustParse("01923F4A-7B3D-7123-8456-426614174000")
	if a.Equal(upper) {
		t.Error("case-differing identifiers should not be textually equal")
	}
	if a.Compare(upper) == 0 {
		t.Error("Compare() = 0 for case-differing identifiers")
	}
}

func TestID_MarshalUnmarshalText(t *testing.T) {
	id := MustParse(knownID)

	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var id2 ID
	if err := id2.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}

	if id != id2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", id2, id)
	}

	if err := id2.UnmarshalText([]byte("not-a-uuid")); err == nil {
		t.Error("UnmarshalText() accepted invalid text")
	}
}

func TestID_JSON(t *testing.T) {
	type event struct {
		ID ID `json:"id"`
	}

	e := event{ID: MustParse(knownID)}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var e2 event
	if err := json.Unmarshal(data, &e2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if e.ID != e2.ID {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %v, want %v", e2.ID, e.ID)
	}

	var e3 event
	if err := json.Unmarshal([]byte(`{"id":"01923f4a-7b3d-4123-8456-426614174000"}`), &e3); err == nil {
		t.Error("json.Unmarshal() accepted a version-4 identifier")
	}
}

func TestID_Scan(t *testing.T) {
	raw, err := MustParse(knownID).Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{"string input", knownID, false},
		{"byte slice input - 16 bytes", raw, false},
		{"byte slice input - string format", []byte(knownID), false},
		{"nil input", nil, false},
		{"empty byte slice", []byte{}, false},
		{"invalid string", "not-a-uuid", true},
		{"version 4 string", "f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"invalid type", 123, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := id.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestID_Value(t *testing.T) {
	id := MustParse(knownID)
	val, err := id.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	str, ok := val.(string)
	if !ok {
		t.Fatalf("Value() returned non-string type: %T", val)
	}

	if str != knownID {
		t.Errorf("Value() = %v, want %v", str, knownID)
	}
}
