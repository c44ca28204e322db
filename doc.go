// Package uuid7 generates, validates and compares time-ordered unique
// identifiers (UUIDv7), keeping them in their canonical 36-character
// textual form.
//
// Generation is delegated to github.com/google/uuid; this package wraps it
// with a validated ID type that cannot be constructed from malformed text.
// Every entry point that produces an ID — New, NewBatch, Parse, TryParse,
// MustParse, FromBytes, the base64 decoders, sql scanning and text
// unmarshaling — validates the value first, so holding a non-zero ID is
// proof that it matches the UUIDv7 layout: a 48-bit millisecond timestamp,
// the version nibble fixed to 7, the RFC variant bits and random data.
//
// Because the timestamp occupies the leftmost positions of the fixed-width
// form, identifiers sort chronologically under plain byte-wise comparison.
// This makes them a good fit for:
//   - Database primary keys (improved B-tree locality)
//   - Event sourcing and audit logs
//   - Any scenario where chronological ordering matters
//
// Basic Usage:
//
//	// Generate a new identifier
//	id, err := uuid7.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Validate and type an externally supplied value
//	id, err := uuid7.Parse("01923f4a-7b3d-7123-8456-426614174000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or without an error path
//	if id, ok := uuid7.TryParse(input); ok {
//	    // use id...
//	}
//
//	// Recover the embedded timestamp
//	ms := id.Timestamp()
//	t := id.Time()
//
// Batches:
//
//	ids, err := uuid7.NewBatch(100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ids are in generation order, expected (not guaranteed) non-decreasing
//
// Custom Sources:
//
// A Generator can be constructed with a custom Source, which is mainly
// useful for substituting a deterministic generator in tests:
//
//	gen := uuid7.NewGeneratorWithSource(func() (string, error) {
//	    return "01923f4a-7b3d-7123-8456-426614174000", nil
//	})
//
// Thread Safety:
//
// The package holds no mutable state of its own; an ID is an immutable
// string value. Concurrent generation is as safe as the underlying Source,
// and the default google/uuid source is safe for concurrent use.
package uuid7
