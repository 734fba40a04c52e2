package cli

import (
	"context"
	"testing"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/session"
	"github.com/cardinalkit/surveybuilder/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, controller state, active draft) that the generic
// driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets the terminal size and drains
// Init(), which runs the startup load against the App's store.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Upload presses u, enters path and submits the form.
func (d *TestDriver) Upload(path string) {
	d.T.Helper()
	d.PressKey('u')
	d.Paste(path)
	d.PressEnter()
}

// Replace clears the focused input and enters s.
func (d *TestDriver) Replace(s string) {
	d.T.Helper()
	d.PressCtrlU()
	if s != "" {
		d.Paste(s)
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the IDs of all views on the stack, bottom first.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) Controller() *session.Controller {
	return d.appModel().state.Controller
}

func (d *TestDriver) State() session.State {
	return d.Controller().State()
}

// Draft returns a copy of the active draft.
func (d *TestDriver) Draft() *domain.Draft {
	return d.Controller().Session().Draft()
}

func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting
}
