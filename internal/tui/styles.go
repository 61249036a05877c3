package tui

import "github.com/charmbracelet/lipgloss"

// Report palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
)

// Styles holds every style the report and the viewer use. Styles are bound
// to a renderer so colour detection follows the output they are written to.
type Styles struct {
	Bar           lipgloss.Style
	Share         lipgloss.Style
	Value         lipgloss.Style
	Key           lipgloss.Style
	Detail        lipgloss.Style
	SubShare      lipgloss.Style
	SubValue      lipgloss.Style
	SubKey        lipgloss.Style
	SubDetail     lipgloss.Style
	Text          lipgloss.Style
	Header        lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	SpinnerAccent lipgloss.Style
}

// NewStyles builds the report palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Bar:       r.NewStyle().Bold(true).Foreground(colorGreen),
		Share:     r.NewStyle().Bold(true).Foreground(colorGreen),
		Value:     r.NewStyle().Bold(true).Foreground(colorBlue),
		Key:       r.NewStyle().Foreground(colorYellow),
		Detail:    r.NewStyle().Faint(true).Foreground(colorYellow),
		SubShare:  r.NewStyle().Faint(true).Foreground(colorGreen),
		SubValue:  r.NewStyle().Foreground(colorBlue),
		SubKey:    r.NewStyle(),
		SubDetail: r.NewStyle().Faint(true),
		Text:      r.NewStyle().Faint(true),
		Header: r.NewStyle().
			Background(colorDark).
			Foreground(colorWhite).
			Padding(0, 1),
		Dim:           r.NewStyle().Foreground(colorGray),
		Error:         r.NewStyle().Foreground(colorRed).Bold(true),
		SpinnerAccent: r.NewStyle().Foreground(colorGreen),
	}
}
