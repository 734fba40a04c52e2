package cli

import (
	"context"
	"log/slog"

	"github.com/cardinalkit/surveybuilder/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App        *App
	Ctx        context.Context
	Controller *session.Controller
	Loader     *session.Loader
	Logger     *slog.Logger

	// Terminal dimensions
	Width  int
	Height int
}

// Session returns the active editing session.
func (s *SharedState) Session() *session.Session {
	return s.Controller.Session()
}

// ContentHeight returns the rows left for the active view after the
// header and status bar.
func (s *SharedState) ContentHeight() int {
	const chrome = 4
	return max(s.Height-chrome, 5)
}
