package cli

import (
	"strings"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/cardinalkit/surveybuilder/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// loadingView is shown while the startup load is in flight. The load is
// silent, so it renders nothing.
type loadingView struct{}

func newLoadingView() *loadingView { return &loadingView{} }

func (v *loadingView) Init() tea.Cmd                           { return nil }
func (v *loadingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *loadingView) View() string                            { return "" }
func (v *loadingView) ID() ViewID                              { return ViewLoading }
func (v *loadingView) Title() string                           { return "" }
func (v *loadingView) ShortHelp() []key.Binding                { return nil }

// restorePromptView asks whether to resume the stored draft.
type restorePromptView struct {
	state  *SharedState
	prompt session.RestorePrompt
}

func newRestorePromptView(state *SharedState, prompt session.RestorePrompt) *restorePromptView {
	return &restorePromptView{state: state, prompt: prompt}
}

var (
	keyYes = key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "resume"))
	keyNo  = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "discard"))
)

func (v *restorePromptView) Init() tea.Cmd { return nil }

func (v *restorePromptView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	ctrl := v.state.Controller
	switch {
	case key.Matches(keyMsg, keyYes):
		if err := ctrl.AcceptRestore(v.state.Ctx); err != nil {
			return v, noticeCmd(formatter.Error(err))
		}
		return v, replaceView(newEditorView(v.state))
	case key.Matches(keyMsg, keyNo):
		if err := ctrl.DeclineRestore(v.state.Ctx); err != nil {
			return v, noticeCmd(formatter.Error(err))
		}
		return v, replaceView(newFrontPageView(v.state))
	}
	return v, nil
}

func (v *restorePromptView) View() string {
	p := v.prompt
	return "\n" + formatter.FormatRestorePrompt(p.Title, p.Name, p.Version, p.ItemCount)
}

func (v *restorePromptView) ID() ViewID               { return ViewRestorePrompt }
func (v *restorePromptView) Title() string            { return "Resume" }
func (v *restorePromptView) ShortHelp() []key.Binding { return []key.Binding{keyYes, keyNo} }

// frontPageView offers to start a new survey or upload an existing one.
type frontPageView struct {
	state *SharedState
	path  string
}

func newFrontPageView(state *SharedState) *frontPageView {
	return &frontPageView{state: state}
}

var (
	keyNew    = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new survey"))
	keyUpload = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload"))
)

func (v *frontPageView) Init() tea.Cmd { return nil }

func (v *frontPageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	ctrl := v.state.Controller
	switch {
	case key.Matches(keyMsg, keyNew):
		if err := ctrl.CreateNew(v.state.Ctx); err != nil {
			return v, noticeCmd(formatter.Error(err))
		}
		return v, replaceView(newEditorView(v.state))
	case key.Matches(keyMsg, keyUpload):
		if ctrl.Loading() {
			return v, noticeCmd(formatter.Error(session.ErrBusy))
		}
		return v, startWizardCmd("Upload", wizardImportPath(&v.path), func() tea.Cmd {
			path := strings.TrimSpace(v.path)
			return func() tea.Msg { return importRequestMsg{path: path} }
		})
	}
	return v, nil
}

func (v *frontPageView) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleFg.Render("Build a FHIR questionnaire, or open one you already have.") + "\n\n")
	b.WriteString(formatter.StyleGreen.Render("[n]") + " Create new survey\n")
	b.WriteString(formatter.StyleGreen.Render("[u]") + " Upload questionnaire JSON\n")
	if err := v.state.Controller.LastError(); err != nil {
		b.WriteString("\n" + formatter.Error(err) + "\n")
	}
	return "\n" + formatter.RenderBox("Survey builder", b.String())
}

func (v *frontPageView) ID() ViewID               { return ViewFrontPage }
func (v *frontPageView) Title() string            { return "" }
func (v *frontPageView) ShortHelp() []key.Binding { return []key.Binding{keyNew, keyUpload} }
