package fincalc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ErrInvalidMapping is returned for a malformed "key=jsonpath" mapping.
var ErrInvalidMapping = errors.New("invalid mapping")

// Mapping associates a category key with the jsonpath of its amount in a
// JSON document.
type Mapping map[string]string

// ParseMapping parses "key=jsonpath" definitions, as given on the command
// line, e.g. "mutualFunds=$.funds[*].value".
func ParseMapping(defs ...string) (Mapping, error) {
	m := make(Mapping)
	for _, def := range defs {
		key, path, ok := strings.Cut(def, "=")
		key, path = strings.TrimSpace(key), strings.TrimSpace(path)
		if !ok || key == "" || path == "" {
			return nil, fmt.Errorf("%q: expecting key=jsonpath: %w", def, ErrInvalidMapping)
		}
		m[key] = path
	}
	return m, nil
}

// DecodeDocument reads a JSON document for Import.
func DecodeDocument(r io.Reader) (any, error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode JSON document: %w", err)
	}
	return doc, nil
}

// Import sets the sheet fields named by the mapping keys with the amounts
// found in doc. A path matching several values sets their sum, a path
// matching nothing leaves the field untouched. Values are coerced like form
// input: numbers and numeric strings are read, anything else counts as zero.
// On error the sheet is left untouched.
func (s *NetWorthSheet) Import(doc any, m Mapping) error {
	for key := range m {
		_, aerr := ParseAsset(key)
		_, lerr := ParseLiability(key)
		if aerr != nil && lerr != nil {
			return fmt.Errorf("cannot import %q: %w", key, ErrUnknownCategory)
		}
	}
	amounts := make(map[string]float64, len(m))
	for key, path := range m {
		val, err := jsonpath.Get(path, doc)
		if err != nil {
			if unmatched(err) {
				continue
			}
			return fmt.Errorf("cannot evaluate %q for %q: %w", path, key, err)
		}
		var values []any
		if list, ok := val.([]any); ok {
			if len(list) == 0 {
				continue
			}
			values = list
		} else {
			values = []any{val}
		}
		sum := 0.
		for _, v := range values {
			sum += coerceAny(v)
		}
		amounts[key] = sum
	}
	for key, v := range amounts {
		if err := s.SetAmount(key, v); err != nil {
			return err
		}
	}
	return nil
}

// unmatched tells whether a jsonpath error only means the document has no
// value at that path: a missing key or an index past the end of an array.
func unmatched(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown key") || strings.Contains(msg, "out of bounds")
}

// coerceAny reads a decoded JSON value as an amount.
func coerceAny(v any) float64 {
	switch v := v.(type) {
	case float64:
		return nonNegative(v)
	case json.Number:
		return CoerceAmount(v.String())
	case string:
		return CoerceAmount(v)
	default:
		return 0
	}
}

// ImportRecords builds fresh records from doc, see NetWorthSheet.Import.
func ImportRecords(doc any, m Mapping) (AssetRecord, LiabilityRecord, error) {
	s := NewNetWorthSheet()
	if err := s.Import(doc, m); err != nil {
		return nil, nil, err
	}
	return s.Assets, s.Liabilities, nil
}
