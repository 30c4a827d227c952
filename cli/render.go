package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"safelink-lite/company"
	"safelink-lite/urlcheck"
)

var (
	safe    = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	dim     = lipgloss.Color("#6B7280")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	labelStyle  = lipgloss.NewStyle().Foreground(dim).Width(14)
	reasonStyle = lipgloss.NewStyle().Foreground(dim)

	statusColors = map[urlcheck.Status]lipgloss.Color{
		urlcheck.StatusSafe:       safe,
		urlcheck.StatusSuspicious: warning,
		urlcheck.StatusFraud:      danger,
		urlcheck.StatusInvalid:    danger,
	}

	confidenceColors = map[company.Confidence]lipgloss.Color{
		company.ConfidenceHigh:   safe,
		company.ConfidenceMedium: warning,
		company.ConfidenceLow:    danger,
	}
)

func renderURLVerdict(v urlcheck.Verdict) string {
	color := statusColors[v.Status]
	status := lipgloss.NewStyle().Bold(true).Foreground(color).Render(string(v.Status))

	var b strings.Builder
	b.WriteString(status + "  " + reasonStyle.Render(v.URL) + "\n\n")
	b.WriteString(field("Risk level", string(v.RiskLevel)))
	if v.RiskScore != nil {
		b.WriteString(field("Risk score", fmt.Sprintf("%d", *v.RiskScore)))
	}
	b.WriteString("\n")
	for _, r := range v.Reasons {
		b.WriteString("  • " + r + "\n")
	}

	return boxStyle.BorderForeground(color).Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func renderCompanyVerdict(v company.Verdict) string {
	color := confidenceColors[v.Confidence]
	if !v.Verified {
		color = danger
	}
	headline := "NOT VERIFIED"
	if v.Verified {
		headline = "VERIFIED"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(headline))
	b.WriteString("  " + v.CompanyName + "\n\n")
	b.WriteString(field("Confidence", string(v.Confidence)))
	optional := []struct{ label, value string }{
		{"Domain", v.Domain},
		{"Industry", v.Industry},
		{"Location", v.Location},
		{"Employees", v.EmployeeCount},
		{"Email", v.ContactEmail},
		{"Phone", v.ContactPhone},
		{"Registrar", v.Registrar},
		{"Registered", v.DomainCreated},
	}
	if v.FoundedYear != 0 {
		optional = append(optional, struct{ label, value string }{"Founded", fmt.Sprintf("%d", v.FoundedYear)})
	}
	for _, o := range optional {
		if o.value != "" {
			b.WriteString(field(o.label, o.value))
		}
	}

	if len(v.Sources) > 0 {
		names := make([]string, len(v.Sources))
		for i, s := range v.Sources {
			names[i] = string(s)
		}
		b.WriteString(field("Sources", strings.Join(names, ", ")))
	}
	if v.Summary != "" {
		b.WriteString("\n" + reasonStyle.Render(v.Summary) + "\n")
	}
	if v.Error != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(danger).Render(v.Error) + "\n")
	}

	return boxStyle.BorderForeground(color).Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func field(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}
