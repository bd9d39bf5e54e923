package model

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Field names as they appear in request bodies.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldCover       = "cover"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldISBN        = "isbn"
)

// MandatoryFields must be present on create and update, in this order.
var MandatoryFields = []string{FieldTitle, FieldCover, FieldPrice, FieldDescription, FieldISBN}

// BookPayload is book data received from a client together with the set
// of fields the client actually sent. Presence is key existence only:
// 0, "" and null all count as present.
type BookPayload struct {
	Book    Book
	present map[string]bool
}

// NewBookPayload marks the given fields as present on book.
func NewBookPayload(book Book, fields ...string) BookPayload {
	p := BookPayload{Book: book, present: make(map[string]bool, len(fields))}
	for _, f := range fields {
		p.present[f] = true
	}
	return p
}

// CompletePayload is a payload with every mandatory field present.
func CompletePayload(book Book) BookPayload {
	return NewBookPayload(book, MandatoryFields...)
}

func (p BookPayload) Has(field string) bool {
	return p.present[field]
}

// DecodeBookPayload reads a JSON object. A present field with the wrong
// JSON type is a validation error since the typed book cannot hold it.
func DecodeBookPayload(data []byte) (BookPayload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return BookPayload{}, NewValidationError("Book data must be a JSON object.")
	}

	p := BookPayload{present: make(map[string]bool, len(raw))}
	targets := map[string]any{
		FieldTitle:       &p.Book.Title,
		FieldCover:       &p.Book.Cover,
		FieldPrice:       &p.Book.Price,
		FieldDescription: &p.Book.Description,
		FieldISBN:        &p.Book.ISBN,
	}

	for name, value := range raw {
		target, known := targets[name]
		if !known && name != FieldID {
			continue
		}
		p.present[name] = true
		if string(value) == "null" {
			continue
		}
		if name == FieldID {
			id, err := decodeID(value)
			if err != nil {
				return BookPayload{}, NewValidationError("Book data field %s is malformed.", name)
			}
			p.Book.ID = id
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return BookPayload{}, NewValidationError("Book data field %s is malformed.", name)
		}
	}

	return p, nil
}

// decodeID accepts any JSON number with an integral value, so 1, 1.0 and
// 1e0 all name book 1. Strings are not numbers.
func decodeID(value json.RawMessage) (int64, error) {
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil || bytes.HasPrefix(bytes.TrimSpace(value), []byte(`"`)) {
		return 0, ErrValidation
	}
	if id, err := n.Int64(); err == nil {
		return id, nil
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() {
		return 0, ErrValidation
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, ErrValidation
	}
	return d.IntPart(), nil
}
