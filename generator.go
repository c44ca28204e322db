package uuid7

import (
	"fmt"

	"github.com/google/uuid"
)

// Source produces one candidate identifier in textual form per call. It is
// the contract consumed from the underlying generator: each invocation
// yields text convertible to the canonical 36-character layout, or signals
// failure with an error or an empty string. Generators post-validate every
// candidate, so a misbehaving Source surfaces as ErrGeneration rather than
// leaking an invalid ID.
type Source func() (string, error)

// googleSource delegates to github.com/google/uuid's UUIDv7 constructor
func googleSource() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Generator produces validated UUIDv7 identifiers from a Source. The
// Generator itself holds no mutable state; concurrent use is as safe as
// the Source it wraps. The default Source (google/uuid) is internally
// locked and safe for concurrent callers.
type Generator struct {
	source Source
}

// NewGenerator creates a Generator backed by github.com/google/uuid
func NewGenerator() *Generator {
	return &Generator{source: googleSource}
}

// NewGeneratorWithSource creates a Generator backed by a custom Source.
// This is primarily useful for testing with deterministic sources.
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{source: src}
}

// New requests one identifier from the source, validates it and returns it
// typed as an ID. A source error, empty value or structurally invalid
// value fails with an error wrapping ErrGeneration.
func (g *Generator) New() (ID, error) {
	s, err := g.source()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if s == "" {
		return "", fmt.Errorf("%w: source returned no value", ErrGeneration)
	}
	if !IsValid(s) {
		return "", fmt.Errorf("%w: source returned malformed value %q", ErrGeneration, s)
	}
	return ID(s), nil
}

// NewBatch generates count identifiers in order. A negative count fails
// with an error wrapping ErrInvalidCount before anything is generated;
// count 0 returns an empty slice. If any single generation fails, no
// identifiers are returned.
//
// Identifiers generated within the same millisecond rely on the source's
// sub-millisecond tie-breaking for ordering, so the result is expected but
// not guaranteed to be non-decreasing.
func (g *Generator) NewBatch(count int) ([]ID, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	ids := make([]ID, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.New()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Must is a helper that wraps a call to a function returning (ID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid7.Must(uuid7.New())
func Must(id ID, err error) ID {
	if err != nil {
		panic(err)
	}
	return id
}

// defaultGenerator is the package-level generator used by New and NewBatch
var defaultGenerator = NewGenerator()

// New generates a new identifier using the default generator
func New() (ID, error) {
	return defaultGenerator.New()
}

// NewBatch generates count identifiers using the default generator
func NewBatch(count int) ([]ID, error) {
	return defaultGenerator.NewBatch(count)
}
