package cli

import (
	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// replaceViewMsg replaces the whole stack with a single view.
type replaceViewMsg struct {
	view View
}

// noticeMsg carries a transient line shown under the header until the next
// key press.
type noticeMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// draftLoadedMsg delivers the startup load result. Draft is nil when no
// usable snapshot exists.
type draftLoadedMsg struct {
	draft *domain.Draft
}

// importRequestMsg asks the appModel to import the file at path.
type importRequestMsg struct {
	path string
}

// importDoneMsg delivers the import result.
type importDoneMsg struct {
	result *service.ImportResult
	err    error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func noticeCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return noticeMsg{text: s} }
}
