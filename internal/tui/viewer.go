package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sqltop/internal/client"
	"github.com/dm/sqltop/internal/engine"
	"github.com/dm/sqltop/internal/model"
)

// Viewer is the Bubble Tea model for the interactive report. It runs the
// search once on start and shows the result in a scrollable viewport.
type Viewer struct {
	ctx      context.Context
	cancel   context.CancelFunc // aborts the in-flight search on quit
	searcher client.Searcher
	params   model.Parameters
	styles   Styles

	loading bool
	report  *model.Report
	err     error

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool // true once the first WindowSizeMsg sized the viewport

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewViewer creates a Viewer that searches s with p when started.
func NewViewer(ctx context.Context, s client.Searcher, p model.Parameters, st Styles) *Viewer {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = st.SpinnerAccent
	ctx, cancel := context.WithCancel(ctx)
	return &Viewer{
		ctx:      ctx,
		cancel:   cancel,
		searcher: s,
		params:   p,
		styles:   st,
		loading:  true, // Init() always issues the search
		spinner:  sp,
	}
}

// Init implements tea.Model. Starts the search immediately on launch.
func (v *Viewer) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, searchCmd(v.ctx, v.searcher, v.params))
}

// Update implements tea.Model. It is the single state-mutation entry point.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.layout()
		return v, nil

	case ReportMsg:
		v.loading = false
		report := msg.Report
		v.report = &report
		v.refreshContent()
		return v, nil

	case SearchErrorMsg:
		v.loading = false
		v.err = msg.Err
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			v.cancel()
			return v, tea.Quit
		case key.Matches(msg, keys.Help):
			v.showHelp = !v.showHelp
			v.layout()
			return v, nil
		case key.Matches(msg, keys.Top):
			v.viewport.GotoTop()
			return v, nil
		case key.Matches(msg, keys.Bottom):
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	if !v.ready {
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// layout sizes the viewport to the space between header and footer.
func (v *Viewer) layout() {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	bodyHeight := v.height - lipgloss.Height(renderHeader(v)) - lipgloss.Height(renderFooter(v))
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !v.ready {
		v.viewport = viewport.New(v.width, bodyHeight)
		v.ready = true
	} else {
		v.viewport.Width = v.width
		v.viewport.Height = bodyHeight
	}
	v.refreshContent()
}

// refreshContent loads the rendered report into the viewport and scrolls to
// the bottom, where the top-ranked group is printed.
func (v *Viewer) refreshContent() {
	if !v.ready || v.report == nil {
		return
	}
	content := RenderReport(*v.report, v.styles)
	if content == "" {
		content = v.styles.Dim.Render("No matching data.")
	}
	v.viewport.SetContent(content)
	v.viewport.GotoBottom()
}

// View implements tea.Model. Renders the full TUI.
func (v *Viewer) View() string {
	var body string
	switch {
	case v.err != nil:
		body = v.styles.Error.Render("Search failed: ") + v.err.Error()
	case v.loading:
		pattern := ""
		if v.searcher != nil {
			pattern = v.searcher.IndexPattern()
		}
		body = v.spinner.View() + " Searching " + pattern + "..."
	case !v.ready:
		body = ""
	default:
		body = v.viewport.View()
	}

	return strings.Join([]string{renderHeader(v), body, renderFooter(v)}, "\n")
}

// Err returns the search error, if any, once the program has finished.
func (v *Viewer) Err() error {
	return v.err
}

// Report returns the finished report, or nil while loading or after an error.
func (v *Viewer) Report() *model.Report {
	return v.report
}

// searchCmd is a Bubble Tea command that runs the single search and returns
// a ReportMsg or SearchErrorMsg.
func searchCmd(ctx context.Context, s client.Searcher, p model.Parameters) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.Top(ctx, s, p)
		if err != nil {
			return SearchErrorMsg{Err: err}
		}
		return ReportMsg{Report: report}
	}
}

// RunViewer runs the interactive viewer until the user quits. It returns the
// search error, if the search failed.
func RunViewer(ctx context.Context, s client.Searcher, p model.Parameters, st Styles, opts ...tea.ProgramOption) error {
	v := NewViewer(ctx, s, p, st)
	defer v.cancel()
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	final, err := tea.NewProgram(v, opts...).Run()
	if err != nil {
		return err
	}
	if fv, ok := final.(*Viewer); ok {
		return fv.Err()
	}
	return nil
}
