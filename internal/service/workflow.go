package service

import "errors"

// ErrTransitionNotAllowed is returned when a status change violates the
// configured transition policy.
var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// TransitionPolicy decides whether a transaction may move from one status to
// another. The zero value (and AnyTransition) allows every transition, which
// matches the historical behavior of the dashboard: any status could be
// assigned from any other. That openness is a known design risk carried on
// purpose; construct a policy with allowed pairs to restrict it.
type TransitionPolicy struct {
	allowed map[[2]string]struct{}
}

// AnyTransition returns the permissive default policy.
func AnyTransition() *TransitionPolicy {
	return &TransitionPolicy{}
}

// NewTransitionPolicy restricts transitions to the given (from, to) pairs.
func NewTransitionPolicy(pairs ...[2]string) *TransitionPolicy {
	allowed := make(map[[2]string]struct{}, len(pairs))
	for _, p := range pairs {
		allowed[p] = struct{}{}
	}
	return &TransitionPolicy{allowed: allowed}
}

// Allows reports whether from → to is permitted. Re-assigning the current
// status is always allowed, and a nil or unrestricted policy allows all.
func (p *TransitionPolicy) Allows(from, to string) bool {
	if from == to {
		return true
	}
	if p == nil || len(p.allowed) == 0 {
		return true
	}
	_, ok := p.allowed[[2]string{from, to}]
	return ok
}

// Restrictive reports whether the policy constrains transitions at all.
// Callers use it to skip fetching current statuses under the open default.
func (p *TransitionPolicy) Restrictive() bool {
	return p != nil && len(p.allowed) > 0
}
