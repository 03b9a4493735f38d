package fincalc

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1", 1, true},
		{"250000", 250000, true},
		{"  12.5", 12.5, true},
		{"12abc", 12, true},
		{"1e3", 1000, true},
		{"1e", 1, true},
		{"1.5e-1x", 0.15, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"-5", -5, true},
		{"+7", 7, true},
		{"1,234", 1, true},
		{"", 0, false},
		{"abc", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"e5", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseNumber_Infinity(t *testing.T) {
	if v, ok := ParseNumber("Infinity"); !ok || !math.IsInf(v, 1) {
		t.Errorf("ParseNumber(Infinity) = %v, %v", v, ok)
	}
	if v, ok := ParseNumber("-Infinity"); !ok || !math.IsInf(v, -1) {
		t.Errorf("ParseNumber(-Infinity) = %v, %v", v, ok)
	}
	if v, ok := ParseNumber("1e400"); !ok || !math.IsInf(v, 1) {
		t.Errorf("ParseNumber(1e400) = %v, %v", v, ok)
	}
}

func TestCoerceAmount(t *testing.T) {
	cases := map[string]float64{
		"":         0,
		"abc":      0,
		"-5":       0,
		"Infinity": 0,
		"12abc":    12,
		"2500.75":  2500.75,
		" 10000 ":  10000,
	}
	for in, want := range cases {
		if got := CoerceAmount(in); got != want {
			t.Errorf("CoerceAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{50, 1, 30, 30},
		{math.NaN(), 500, 1000, 500},
		{math.Inf(1), 1, 40, 40},
		{math.Inf(-1), 1, 40, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
