// Package renderer turns calculator results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fincalc"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates is the root of the embedded template files.
var templates, _ = fs.Sub(templateFS, "templates")

// funcs are available in every template.
var funcs = template.FuncMap{
	"inr": fincalc.INR,
	"bar": bar,
}

// RenderNetWorth renders a net worth sheet and its health assessment.
func RenderNetWorth(nw *NetWorth) string {
	partials := map[string]string{
		"networth_summary":  "networth_summary.md",
		"networth_sections": "networth_sections.md",
		"networth_tips":     "networth_tips.md",
	}
	return renderTemplate("networth", "networth.md", partials, nw)
}

// RenderSIP renders a SIP projection with its growth breakdown.
func RenderSIP(s *SIP) string {
	partials := map[string]string{
		"sip_breakdown": "sip_breakdown.md",
		"sip_benefits":  "sip_benefits.md",
	}
	if len(s.Result.Breakdown) == 0 {
		// An empty file name results in an empty template.
		partials["sip_breakdown"] = ""
	}
	return renderTemplate("sip", "sip.md", partials, s)
}

// RenderCategories renders the asset and liability keys accepted by the calculators.
func RenderCategories() string {
	data := struct {
		Assets, Liabilities []fincalc.Group
	}{fincalc.AssetGroups(), fincalc.LiabilityGroups()}
	return renderTemplate("categories", "categories.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// bar draws a percentage (0 to 100) as a line of blocks, one per 5%.
func bar(width int) string {
	width = max(0, min(width, 100))
	return strings.Repeat("█", width/5) + strings.Repeat("░", 20-width/5)
}
