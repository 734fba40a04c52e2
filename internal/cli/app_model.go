package cli

import (
	"context"
	"strings"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/service"
	"github.com/cardinalkit/surveybuilder/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It owns the session
// controller and a view stack; all controller transitions happen inside
// Update, while the startup load and imports run as Cmds.
type appModel struct {
	state     *SharedState
	viewStack []View
	spinner   spinner.Model
	quitting  bool

	// Transient line under the header, cleared by the next key press.
	notice string
}

func newAppModel(ctx context.Context, app *App) appModel {
	logger := app.Logger
	if logger == nil {
		logger = discardLogger()
	}
	sess := session.New(app.Drafts, logger)
	ctrl := session.NewController(sess, session.NewArbiter(sess, app.Config.PurgeOnDecline))

	state := &SharedState{
		App:        app,
		Ctx:        ctx,
		Controller: ctrl,
		Loader:     session.NewLoader(app.Drafts, app.Config.LoadTimeout, logger),
		Logger:     logger,
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: formatter.SpinnerFrames, FPS: time.Second / 12}),
		spinner.WithStyle(formatter.StylePurple),
	)

	return appModel{
		state:     state,
		viewStack: []View{newLoadingView()},
		spinner:   sp,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if !m.state.Controller.BeginLoad() {
		return nil
	}
	return loadDraftCmd(m.state.Ctx, m.state.Loader)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case draftLoadedMsg:
		return m.handleDraftLoaded(msg)

	case importRequestMsg:
		return m.handleImportRequest(msg)

	case importDoneMsg:
		return m.handleImportDone(msg)

	case spinner.TickMsg:
		if !m.state.Controller.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.viewStack = []View{msg.view}
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Pop the wizard, then let the view underneath handle the result.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd
	}

	// Forward everything else (cursor blink, view-specific results) to the
	// active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.notice = ""

	// Views with a text input receive every key, including q.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleDraftLoaded(msg draftLoadedMsg) (tea.Model, tea.Cmd) {
	st, err := m.state.Controller.CompleteLoad(msg.draft)
	if err != nil {
		m.state.Logger.Warn("unexpected load result", "error", err)
		return m, nil
	}
	if st == session.StateRestorePrompt {
		prompt, _ := m.state.Controller.Arbiter().Prompt()
		return m, replaceView(newRestorePromptView(m.state, prompt))
	}
	return m, replaceView(newFrontPageView(m.state))
}

func (m appModel) handleImportRequest(msg importRequestMsg) (tea.Model, tea.Cmd) {
	if err := m.state.Controller.BeginImport(); err != nil {
		m.notice = formatter.Error(err)
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, importCmd(m.state.Ctx, m.state.App.Import, msg.path))
}

func (m appModel) handleImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	var d *domain.Draft
	if msg.result != nil {
		d = msg.result.Draft
	}
	if err := m.state.Controller.CompleteImport(m.state.Ctx, d, msg.err); err != nil {
		m.state.Logger.Info("import failed", "error", err)
		// The front page renders LastError; nothing else changes.
		return m, nil
	}
	return m, tea.Batch(
		replaceView(newEditorView(m.state)),
		noticeCmd(strings.TrimRight(formatter.FormatImportResult(msg.result), "\n")),
	)
}

// broadcast forwards msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if m.notice != "" {
		sections = append(sections, m.notice)
	}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	if m.state.Controller.Loading() {
		sections = append(sections, "  "+m.spinner.View()+" "+formatter.Dim("Importing questionnaire…"))
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("surveybuilder")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	if m.state.Controller.State() == session.StateEditor {
		d := m.state.Session().Draft()
		name := domain.CoalesceStr(d.Metadata.Title, d.Metadata.Name, "untitled")
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(name) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if !viewCapturesInput(v) {
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput returns true if the view has its own text input and
// should receive all key events, bypassing global keybindings like q.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}

// loadDraftCmd runs the startup load. The loader never fails; a missing or
// unreadable snapshot arrives as a nil draft.
func loadDraftCmd(ctx context.Context, loader *session.Loader) tea.Cmd {
	return func() tea.Msg {
		return draftLoadedMsg{draft: loader.Load(ctx)}
	}
}

func importCmd(ctx context.Context, svc service.ImportService, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.ImportFile(ctx, path)
		return importDoneMsg{result: res, err: err}
	}
}

// saveDraftCmd writes a draft revision off the Update loop.
func saveDraftCmd(ctx context.Context, save func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		save(ctx)
		return nil
	}
}
