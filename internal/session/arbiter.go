package session

import (
	"context"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// ShouldPrompt reports whether a stored snapshot is worth offering back.
// A snapshot without items is an accidental empty save, not real work.
func ShouldPrompt(snapshot *domain.Draft) bool {
	return snapshot.InProgress()
}

// RestorePrompt is the summary shown when offering a stored draft.
// Missing fields are empty strings.
type RestorePrompt struct {
	Title     string
	Name      string
	Version   string
	ItemCount int
}

// Arbiter decides once per session whether to offer the stored draft and
// applies the user's answer to the session.
type Arbiter struct {
	session        *Session
	purgeOnDecline bool

	evaluated bool
	decision  domain.RestoreDecision
	candidate *domain.Draft
}

// NewArbiter creates an arbiter for the session. With purgeOnDecline the
// stored snapshot is removed when the user discards it; otherwise it stays
// and is offered again on the next start.
func NewArbiter(s *Session, purgeOnDecline bool) *Arbiter {
	return &Arbiter{
		session:        s,
		purgeOnDecline: purgeOnDecline,
		decision:       domain.DecisionNone,
	}
}

// Evaluate inspects the loaded snapshot and reports whether to prompt.
// Only the first call has any effect; later calls return false.
func (a *Arbiter) Evaluate(snapshot *domain.Draft) bool {
	if a.evaluated {
		return false
	}
	a.evaluated = true
	if !ShouldPrompt(snapshot) {
		return false
	}
	a.candidate = snapshot.Clone()
	a.decision = domain.DecisionPending
	return true
}

// Decision returns the current restore decision.
func (a *Arbiter) Decision() domain.RestoreDecision {
	return a.decision
}

// Pending reports whether the user still has to answer the prompt.
func (a *Arbiter) Pending() bool {
	return a.decision == domain.DecisionPending
}

// Prompt returns the summary of the pending candidate.
func (a *Arbiter) Prompt() (RestorePrompt, bool) {
	if !a.Pending() {
		return RestorePrompt{}, false
	}
	m := a.candidate.Metadata
	return RestorePrompt{
		Title:     m.Title,
		Name:      m.Name,
		Version:   m.Version,
		ItemCount: len(a.candidate.Items),
	}, true
}

// Accept makes the candidate the active draft. It returns false when no
// prompt is pending.
func (a *Arbiter) Accept(ctx context.Context) bool {
	if !a.Pending() {
		return false
	}
	// The candidate is already the stored snapshot; no save needed.
	a.session.resetInMemory(a.candidate)
	a.candidate = nil
	a.decision = domain.DecisionAccepted
	return true
}

// Decline resets the active draft to the empty default. It returns false
// when no prompt is pending.
func (a *Arbiter) Decline(ctx context.Context) bool {
	if !a.Pending() {
		return false
	}
	a.session.resetInMemory(nil)
	if a.purgeOnDecline {
		a.session.Purge(ctx)
	}
	a.candidate = nil
	a.decision = domain.DecisionDeclined
	return true
}
