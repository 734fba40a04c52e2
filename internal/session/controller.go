package session

import (
	"context"
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// State is a Controller state.
type State int

const (
	StateInit State = iota
	StateLoading
	StateRestorePrompt
	StateFrontPage
	StateEditor
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateLoading:
		return "loading"
	case StateRestorePrompt:
		return "restore-prompt"
	case StateFrontPage:
		return "front-page"
	case StateEditor:
		return "editor"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Controller sequences startup load, restore arbitration, import and
// editor activation. It is not safe for concurrent use; drive it from a
// single event loop and run the blocking work (Loader.Load, imports)
// elsewhere, feeding results back through CompleteLoad and CompleteImport.
type Controller struct {
	session *Session
	arbiter *Arbiter

	state     State
	importing bool
	lastErr   error
}

func NewController(s *Session, arbiter *Arbiter) *Controller {
	return &Controller{session: s, arbiter: arbiter, state: StateInit}
}

func (c *Controller) State() State      { return c.state }
func (c *Controller) Session() *Session { return c.session }
func (c *Controller) Arbiter() *Arbiter { return c.arbiter }

// Loading reports whether an import is in flight. The silent startup load
// does not count.
func (c *Controller) Loading() bool { return c.importing }

// LastError returns the most recent user-visible failure, if any.
func (c *Controller) LastError() error { return c.lastErr }

// BeginLoad moves Init to Loading. It returns false if the load was already
// started, so callers issue exactly one load per session.
func (c *Controller) BeginLoad() bool {
	if c.state != StateInit {
		return false
	}
	c.state = StateLoading
	return true
}

// CompleteLoad hands the loaded snapshot (nil when absent) to the arbiter.
func (c *Controller) CompleteLoad(snapshot *domain.Draft) (State, error) {
	if c.state != StateLoading {
		return c.state, fmt.Errorf("%w: load completed in state %s", ErrInvalidTransition, c.state)
	}
	if c.arbiter.Evaluate(snapshot) {
		c.state = StateRestorePrompt
	} else {
		c.state = StateFrontPage
	}
	return c.state, nil
}

// AcceptRestore resumes the stored draft and opens the editor.
func (c *Controller) AcceptRestore(ctx context.Context) error {
	if c.state != StateRestorePrompt || !c.arbiter.Accept(ctx) {
		return fmt.Errorf("%w: accept in state %s", ErrInvalidTransition, c.state)
	}
	c.state = StateEditor
	return nil
}

// DeclineRestore discards the stored draft and shows the front page.
func (c *Controller) DeclineRestore(ctx context.Context) error {
	if c.state != StateRestorePrompt || !c.arbiter.Decline(ctx) {
		return fmt.Errorf("%w: decline in state %s", ErrInvalidTransition, c.state)
	}
	c.state = StateFrontPage
	return nil
}

// CreateNew starts an empty survey, overwriting the stored snapshot.
func (c *Controller) CreateNew(ctx context.Context) error {
	if c.state != StateFrontPage || c.importing {
		return fmt.Errorf("%w: create new in state %s", ErrInvalidTransition, c.state)
	}
	c.lastErr = nil
	c.session.Reset(ctx, nil)
	c.state = StateEditor
	return nil
}

// BeginImport marks an import as in flight. Only one operation may be
// outstanding at a time.
func (c *Controller) BeginImport() error {
	if c.importing || c.state == StateLoading || c.state == StateInit {
		return ErrBusy
	}
	if c.state != StateFrontPage {
		return fmt.Errorf("%w: import in state %s", ErrInvalidTransition, c.state)
	}
	c.importing = true
	c.lastErr = nil
	return nil
}

// CompleteImport finishes an import started with BeginImport. On success
// the imported draft replaces the active one and the editor opens. On
// failure the active draft is untouched, the error is kept for display and
// the front page stays.
func (c *Controller) CompleteImport(ctx context.Context, d *domain.Draft, importErr error) error {
	if !c.importing {
		return fmt.Errorf("%w: no import in flight", ErrInvalidTransition)
	}
	c.importing = false

	if importErr == nil && d == nil {
		importErr = fmt.Errorf("import produced no document")
	}
	if importErr != nil {
		c.lastErr = importErr
		return importErr
	}

	c.session.Reset(ctx, d)
	c.state = StateEditor
	return nil
}

// CloseEditor returns to the front page.
func (c *Controller) CloseEditor() error {
	if c.state != StateEditor {
		return fmt.Errorf("%w: close editor in state %s", ErrInvalidTransition, c.state)
	}
	c.state = StateFrontPage
	return nil
}
