package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	green := lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	red := lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	yellow := lipgloss.AdaptiveColor{Light: "#F57F17", Dark: "#FFCA28"}
	gray := lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	blue := lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#42A5F5"}

	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(blue),
		Header2: r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(gray),
		Success: r.NewStyle().Foreground(green),
		Warning: r.NewStyle().Foreground(yellow),
		Error:   r.NewStyle().Foreground(red).Bold(true),

		StatusSuccess: r.NewStyle().Foreground(green).SetString("✓"),
		StatusFailed:  r.NewStyle().Foreground(red).SetString("✗"),
	}
}
