package fincalc

import "testing"

// sheet is a helper for tests to build a sheet from key/value pairs.
func sheet(t *testing.T, kv map[string]float64) *NetWorthSheet {
	t.Helper()
	s := NewNetWorthSheet()
	for k, v := range kv {
		if err := s.SetAmount(k, v); err != nil {
			t.Fatalf("SetAmount(%q) error = %v", k, err)
		}
	}
	return s
}
