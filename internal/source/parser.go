// Package source parses the expense payload into model entries.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/spendview/internal/model"
)

// Sentinel errors wrapped by Parse. Any of them is fatal for the caller.
var (
	ErrMalformed      = errors.New("malformed payload")
	ErrMissingField   = errors.New("missing required field")
	ErrNegativeAmount = errors.New("negative amount")
)

// rawEntry mirrors one payload object. Pointer fields let Parse tell a
// missing field apart from a zero value.
type rawEntry struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Time     *int64   `json:"time"`
}

// FieldError reports a problem with one field of one payload entry.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("entry %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseFile reads and parses the payload at path.
func ParseFile(path string) ([]model.ExpenseEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	entries, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// ParseBytes parses an in-memory payload.
func ParseBytes(data []byte) ([]model.ExpenseEntry, error) {
	return Parse(bytes.NewReader(data))
}

// Parse decodes a JSON array of expense objects. Parsing is all-or-nothing:
// the first malformed or incomplete entry fails the whole payload.
func Parse(r io.Reader) ([]model.ExpenseEntry, error) {
	dec := json.NewDecoder(r)

	var raw []rawEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// A top-level null decodes into a nil slice; "[]" does not.
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is not an array", ErrMalformed)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after array", ErrMalformed)
	}

	entries := make([]model.ExpenseEntry, 0, len(raw))
	for i, re := range raw {
		e, err := re.toEntry(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (re rawEntry) toEntry(idx int) (model.ExpenseEntry, error) {
	missing := func(field string) error {
		return &FieldError{Index: idx, Field: field, Err: ErrMissingField}
	}

	switch {
	case re.ID == nil:
		return model.ExpenseEntry{}, missing("id")
	case re.Name == nil:
		return model.ExpenseEntry{}, missing("name")
	case re.Amount == nil:
		return model.ExpenseEntry{}, missing("amount")
	case re.Category == nil:
		return model.ExpenseEntry{}, missing("category")
	case re.Time == nil:
		return model.ExpenseEntry{}, missing("time")
	}

	if *re.Amount < 0 {
		return model.ExpenseEntry{}, &FieldError{Index: idx, Field: "amount", Err: ErrNegativeAmount}
	}

	return model.ExpenseEntry{
		ID:       *re.ID,
		Name:     *re.Name,
		Amount:   *re.Amount,
		Category: *re.Category,
		Time:     *re.Time,
	}, nil
}
