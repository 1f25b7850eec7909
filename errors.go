package rvcodec

import "fmt"

// DecodeError reports a rejected instruction word: the raw word and a
// short, stable tag naming the field or rule that failed. Callers may
// match on Field in tests; the string values are taken verbatim from
// the field tags this codec's reference implementation uses, so tests
// can assert on them without caring about full error-message prose.
type DecodeError struct {
	Word  uint32
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rvcodec: decode %#08x: %s", e.Word, e.Field)
}

func errf(word uint32, field string) *DecodeError {
	return &DecodeError{Word: word, Field: field}
}
