package fincalc

import "fmt"

// AssetRecord maps every asset key to its amount.
type AssetRecord map[Asset]Money

// LiabilityRecord maps every liability key to its amount.
type LiabilityRecord map[Liability]Money

// NewAssetRecord returns a record with every known asset at zero.
func NewAssetRecord() AssetRecord {
	r := make(AssetRecord)
	for _, a := range Assets() {
		r[a] = INR(0)
	}
	return r
}

// NewLiabilityRecord returns a record with every known liability at zero.
func NewLiabilityRecord() LiabilityRecord {
	r := make(LiabilityRecord)
	for _, l := range Liabilities() {
		r[l] = INR(0)
	}
	return r
}

// ResetToDefaults returns both records with every known key at zero.
func ResetToDefaults() (AssetRecord, LiabilityRecord) {
	return NewAssetRecord(), NewLiabilityRecord()
}

// Total returns the sum of all the known asset fields. Missing fields count as zero.
func (r AssetRecord) Total() Money {
	total := INR(0)
	for _, a := range Assets() {
		total = total.Add(r[a])
	}
	return total
}

// GroupTotal returns the sum of the fields of the given group.
func (r AssetRecord) GroupTotal(title string) Money {
	total := INR(0)
	for _, a := range Assets() {
		if a.Group() == title {
			total = total.Add(r[a])
		}
	}
	return total
}

// Total returns the sum of all the known liability fields. Missing fields count as zero.
func (r LiabilityRecord) Total() Money {
	total := INR(0)
	for _, l := range Liabilities() {
		total = total.Add(r[l])
	}
	return total
}

// GroupTotal returns the sum of the fields of the given group.
func (r LiabilityRecord) GroupTotal(title string) Money {
	total := INR(0)
	for _, l := range Liabilities() {
		if l.Group() == title {
			total = total.Add(r[l])
		}
	}
	return total
}

// NetWorthSummary holds the totals derived from an asset and a liability record.
type NetWorthSummary struct {
	TotalAssets      Money
	TotalLiabilities Money
	NetWorth         Money
}

// ComputeNetWorth sums both records and derives the net worth.
//
// Amounts are summed exactly, without rounding, so that
// NetWorth == TotalAssets - TotalLiabilities always holds. Nil records and
// missing fields count as zero.
func ComputeNetWorth(assets AssetRecord, liabilities LiabilityRecord) NetWorthSummary {
	ta := assets.Total()
	tl := liabilities.Total()
	return NetWorthSummary{
		TotalAssets:      ta,
		TotalLiabilities: tl,
		NetWorth:         ta.Sub(tl),
	}
}

func (s NetWorthSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalAssets", s.TotalAssets)
	w.Append("totalLiabilities", s.TotalLiabilities)
	w.Append("netWorth", s.NetWorth)
	return w.MarshalJSON()
}

// NetWorthSheet is the state edited by a net worth calculator: one asset and
// one liability record. It is owned by a single host and not safe for
// concurrent use. The zero value is an empty sheet.
type NetWorthSheet struct {
	Assets      AssetRecord
	Liabilities LiabilityRecord
}

// NewNetWorthSheet returns a sheet with every field at zero.
func NewNetWorthSheet() *NetWorthSheet {
	s := &NetWorthSheet{}
	s.Reset()
	return s
}

// Reset sets every field back to zero.
func (s *NetWorthSheet) Reset() {
	s.Assets, s.Liabilities = ResetToDefaults()
}

// SetAsset coerces raw into an amount and stores it.
func (s *NetWorthSheet) SetAsset(a Asset, raw string) {
	s.SetAssetAmount(a, CoerceAmount(raw))
}

// SetAssetAmount stores v, negative or non finite values being stored as zero.
func (s *NetWorthSheet) SetAssetAmount(a Asset, v float64) {
	if s.Assets == nil {
		s.Assets = NewAssetRecord()
	}
	s.Assets[a] = INR(nonNegative(v))
}

// SetLiability coerces raw into an amount and stores it.
func (s *NetWorthSheet) SetLiability(l Liability, raw string) {
	s.SetLiabilityAmount(l, CoerceAmount(raw))
}

// SetLiabilityAmount stores v, negative or non finite values being stored as zero.
func (s *NetWorthSheet) SetLiabilityAmount(l Liability, v float64) {
	if s.Liabilities == nil {
		s.Liabilities = NewLiabilityRecord()
	}
	s.Liabilities[l] = INR(nonNegative(v))
}

// Set coerces raw into an amount and stores it into the asset or liability
// named key. An unknown key is the only error.
func (s *NetWorthSheet) Set(key, raw string) error {
	return s.SetAmount(key, CoerceAmount(raw))
}

// SetAmount stores v into the asset or liability named key.
func (s *NetWorthSheet) SetAmount(key string, v float64) error {
	if a, err := ParseAsset(key); err == nil {
		s.SetAssetAmount(a, v)
		return nil
	}
	if l, err := ParseLiability(key); err == nil {
		s.SetLiabilityAmount(l, v)
		return nil
	}
	return fmt.Errorf("cannot set %q: %w", key, ErrUnknownCategory)
}

// Summary computes the totals of the current records.
func (s *NetWorthSheet) Summary() NetWorthSummary {
	return ComputeNetWorth(s.Assets, s.Liabilities)
}

// MarshalJSON encodes the records, in display order, and their summary.
func (s *NetWorthSheet) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Object("assets", func(o *jsonObjectWriter) {
		for _, a := range Assets() {
			o.Append(string(a), s.Assets[a].Float64())
		}
	})
	w.Object("liabilities", func(o *jsonObjectWriter) {
		for _, l := range Liabilities() {
			o.Append(string(l), s.Liabilities[l].Float64())
		}
	})
	w.Append("summary", s.Summary())
	return w.MarshalJSON()
}
