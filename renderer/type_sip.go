package renderer

import "github.com/etnz/fincalc"

// SIP is the view of a SIP projection.
type SIP struct {
	Result   fincalc.SIPResult
	Benefits []fincalc.Benefit
}

// NewSIP builds the view of r.
func NewSIP(r fincalc.SIPResult) *SIP {
	return &SIP{Result: r, Benefits: fincalc.SIPBenefits()}
}
