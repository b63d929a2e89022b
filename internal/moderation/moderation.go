// Package moderation implements the artwork review lifecycle:
// pending records are approved or rejected by an administrator, and any
// record may be deleted.
package moderation

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid moderation transition")
	ErrUnknownAction     = errors.New("unknown moderation action")
)

// Action is an administrator moderation command.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
)

// RequiresConfirmation reports whether the action must be explicitly confirmed.
func (a Action) RequiresConfirmation() bool {
	return a == ActionReject || a == ActionDelete
}

// Event maps an action to the change event it produces.
func (a Action) Event() string {
	switch a {
	case ActionApprove:
		return models.EventArtworkApproved
	case ActionReject:
		return models.EventArtworkRejected
	case ActionDelete:
		return models.EventArtworkDeleted
	}
	return ""
}

// Transition returns the status a record moves to when action is applied.
// changed is false when the record already sits in the target state.
// Delete is accepted from every state; the returned status is meaningless
// for it because the record ceases to exist.
func Transition(from models.Status, action Action) (to models.Status, changed bool, err error) {
	switch action {
	case ActionApprove:
		switch from.Effective() {
		case models.StatusPending:
			return models.StatusApproved, true, nil
		case models.StatusApproved:
			return from, false, nil
		}
	case ActionReject:
		switch from.Effective() {
		case models.StatusPending:
			return models.StatusRejected, true, nil
		case models.StatusRejected:
			return from, false, nil
		}
	case ActionDelete:
		return from, true, nil
	default:
		return from, false, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return from, false, fmt.Errorf("%w: cannot %s a %s artwork", ErrInvalidTransition, action, from.Effective())
}

// Actions lists the moderation actions an administrator may take on a record.
func Actions(s models.Status) []Action {
	if s.Effective() == models.StatusPending {
		return []Action{ActionApprove, ActionReject, ActionDelete}
	}
	return []Action{ActionDelete}
}
