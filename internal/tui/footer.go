package tui

// renderFooter renders the key binding help footer at full terminal width.
// When v.showHelp is true, shows all key bindings; otherwise a brief hint.
func renderFooter(v *Viewer) string {
	width := v.width
	if width <= 0 {
		width = 80
	}
	text := "q to quit  ? for help"
	if v.showHelp {
		text = helpText
	}
	return v.styles.Dim.Width(width).Render(text)
}
