package cli

import (
	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// metadataEditedMsg carries metadata changes from an editor wizard.
type metadataEditedMsg struct {
	actions []session.Action
}

// editorView shows the active draft: metadata header and question tree.
type editorView struct {
	state *SharedState
	vp    viewport.Model

	url  string
	meta metadataValues
}

func newEditorView(state *SharedState) *editorView {
	v := &editorView{state: state, vp: viewport.New(0, 0)}
	v.resize()
	v.refresh()
	return v
}

var (
	keyMetadata = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metadata"))
	keySetup    = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "survey url"))
	keyClose    = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))
)

// Init opens survey setup when the draft has no canonical URL yet.
func (v *editorView) Init() tea.Cmd {
	if v.state.Session().Draft().Metadata.URL != "" {
		return nil
	}
	return v.setupCmd()
}

func (v *editorView) setupCmd() tea.Cmd {
	current := v.state.Session().Draft().Metadata.URL
	return startWizardCmd("Survey setup", wizardSurveySetup(current, &v.url), func() tea.Cmd {
		actions := []session.Action{session.UpdateMetadataAction{Field: domain.MetaURL, Value: v.url}}
		return func() tea.Msg { return metadataEditedMsg{actions: actions} }
	})
}

func (v *editorView) metadataCmd() tea.Cmd {
	current := v.state.Session().Draft().Metadata
	return startWizardCmd("Metadata", wizardMetadata(current, &v.meta), func() tea.Cmd {
		actions := []session.Action{
			session.UpdateMetadataAction{Field: domain.MetaTitle, Value: v.meta.Title},
			session.UpdateMetadataAction{Field: domain.MetaName, Value: v.meta.Name},
			session.UpdateMetadataAction{Field: domain.MetaVersion, Value: v.meta.Version},
		}
		return func() tea.Msg { return metadataEditedMsg{actions: actions} }
	})
}

func (v *editorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case metadataEditedMsg:
		save := v.state.Session().Apply(msg.actions...)
		v.refresh()
		return v, saveDraftCmd(v.state.Ctx, save)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMetadata):
			return v, v.metadataCmd()
		case key.Matches(msg, keySetup):
			return v, v.setupCmd()
		case key.Matches(msg, keyClose):
			if err := v.state.Controller.CloseEditor(); err != nil {
				return v, noticeCmd(formatter.Error(err))
			}
			return v, replaceView(newFrontPageView(v.state))
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *editorView) resize() {
	v.vp.Width = max(v.state.Width, 20)
	v.vp.Height = v.state.ContentHeight()
}

func (v *editorView) refresh() {
	d := v.state.Session().Draft()
	v.vp.SetContent(formatter.FormatDraftHeader(d.Metadata) + "\n" + formatter.FormatItemTree(d))
}

func (v *editorView) View() string {
	return v.vp.View()
}

func (v *editorView) ID() ViewID    { return ViewEditor }
func (v *editorView) Title() string { return "Editor" }
func (v *editorView) ShortHelp() []key.Binding {
	return []key.Binding{keyMetadata, keySetup, keyClose}
}
