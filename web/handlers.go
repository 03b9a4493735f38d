package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/docs"
	"github.com/etnz/fincalc/renderer"
)

// maxBodyBytes limits the size of the JSON bodies of the API.
const maxBodyBytes = 1 << 20

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	md, err := docs.GetTopic("home")
	if err != nil {
		s.log.ErrorContext(r.Context(), "Home topic missing", "error", err)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "home.html", page{Title: "Financial Calculators"}, md)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("topic")
	i := slices.IndexFunc(s.topics, func(t docs.Topic) bool { return t.Name == name })
	if i < 0 {
		http.NotFound(w, r)
		return
	}
	md, err := docs.GetTopic(name)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Topic missing", "error", err, "topic", name)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "home.html", page{Title: s.topics[i].Title}, md)
}

// netWorthForm is the data of the net worth form.
type netWorthForm struct {
	Assets      []formGroup
	Liabilities []formGroup
	Expenses    string
}

type formGroup struct {
	Title  string
	Fields []formField
}

type formField struct {
	Key, Label, Placeholder, Value string
}

func newFormGroups(groups []fincalc.Group, q url.Values) []formGroup {
	res := make([]formGroup, 0, len(groups))
	for _, g := range groups {
		fg := formGroup{Title: g.Title}
		for _, f := range g.Fields {
			fg.Fields = append(fg.Fields, formField{f.Key, f.Label, f.Placeholder, q.Get(f.Key)})
		}
		res = append(res, fg)
	}
	return res
}

// sheetFromQuery fills a sheet with the query values. In strict mode an
// unknown key is an error, otherwise it is ignored.
func sheetFromQuery(q url.Values, strict bool) (*fincalc.NetWorthSheet, error) {
	s := fincalc.NewNetWorthSheet()
	for key, values := range q {
		if key == "expenses" || len(values) == 0 {
			continue
		}
		if err := s.Set(key, values[len(values)-1]); err != nil && strict {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sheet, _ := sheetFromQuery(q, false)
	expenses := fincalc.CoerceAmount(q.Get("expenses"))

	form := netWorthForm{
		Assets:      newFormGroups(fincalc.AssetGroups(), q),
		Liabilities: newFormGroups(fincalc.LiabilityGroups(), q),
		Expenses:    q.Get("expenses"),
	}
	report := renderer.RenderNetWorth(renderer.NewNetWorth(sheet, expenses))
	s.render(w, r, "networth.html", page{Title: "Net Worth Calculator", Form: form}, report)
}

// sipForm is the data of the SIP form.
type sipForm struct {
	Params       fincalc.SIPParameters
	Limits       fincalc.Bounds // accepted values
	Ranges       fincalc.Bounds // steps
	Presets      []presetLink
	QuickAmounts []float64
	QuickRates   []float64
}

type presetLink struct {
	Number int
	fincalc.Preset
}

// plannerFromQuery applies the preset first, then the explicit parameters.
func plannerFromQuery(q url.Values) *fincalc.SIPPlanner {
	p := fincalc.NewSIPPlanner()
	if n, err := strconv.Atoi(q.Get("preset")); err == nil && n >= 1 && n <= len(fincalc.Presets) {
		p.ApplyPreset(fincalc.Presets[n-1])
	}
	if q.Has("monthly") {
		p.SetMonthlyInvestmentText(q.Get("monthly"))
	}
	if q.Has("rate") {
		p.SetAnnualReturnText(q.Get("rate"))
	}
	if q.Has("years") {
		p.SetYearsText(q.Get("years"))
	}
	return p
}

func (s *Server) handleSIP(w http.ResponseWriter, r *http.Request) {
	planner := plannerFromQuery(r.URL.Query())
	form := sipForm{
		Params:       planner.Params(),
		Limits:       fincalc.DefaultBounds,
		Ranges:       fincalc.DisplayRanges,
		QuickAmounts: fincalc.QuickAmounts,
		QuickRates:   fincalc.QuickRates,
	}
	for i, p := range fincalc.Presets {
		form.Presets = append(form.Presets, presetLink{i + 1, p})
	}
	report := renderer.RenderSIP(renderer.NewSIP(planner.Result()))
	s.render(w, r, "sip.html", page{Title: "SIP Calculator", Form: form}, report)
}

func (s *Server) handleNetWorthQuery(w http.ResponseWriter, r *http.Request) {
	sheet, err := sheetFromQuery(r.URL.Query(), true)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.writeJSON(w, r, sheet)
}

// netWorthBody is the JSON body of the net worth API.
type netWorthBody struct {
	Assets      map[string]float64 `json:"assets"`
	Liabilities map[string]float64 `json:"liabilities"`
}

func (s *Server) handleNetWorthBody(w http.ResponseWriter, r *http.Request) {
	var body netWorthBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.badRequest(w, r, fmt.Errorf("invalid body: %w", err))
		return
	}

	sheet := fincalc.NewNetWorthSheet()
	for key, v := range body.Assets {
		a, err := fincalc.ParseAsset(key)
		if err != nil {
			s.badRequest(w, r, err)
			return
		}
		sheet.SetAssetAmount(a, v)
	}
	for key, v := range body.Liabilities {
		l, err := fincalc.ParseLiability(key)
		if err != nil {
			s.badRequest(w, r, err)
			return
		}
		sheet.SetLiabilityAmount(l, v)
	}
	s.writeJSON(w, r, sheet)
}

func (s *Server) handleSIPQuery(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, plannerFromQuery(r.URL.Query()).Result())
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.ErrorContext(r.Context(), "JSON encoding failed", "error", err)
		http.Error(w, "cannot encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	reason := "invalid request"
	if errors.Is(err, fincalc.ErrUnknownCategory) {
		reason = "unknown category"
	}
	s.log.WarnContext(r.Context(), "Bad request", "reason", reason, "error", err, "request_id", RequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
