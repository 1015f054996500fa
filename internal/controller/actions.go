package controller

import (
	"unicode"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// ActionKind enumerates what a user can do with the current change.
type ActionKind int

// Available action kinds.
const (
	ActionAccept ActionKind = iota
	ActionAlways
	ActionViewAlternatives
	ActionCustomize
	ActionReplace
	ActionSkip
	ActionRefuse
	ActionIgnore
	ActionAbort
	ActionCancel
)

// Action is an entry of the action menu. Replacement is set for Customize and Replace.
type Action struct {
	Kind        ActionKind
	Replacement m.Replacement
}

// DetermineFor lists the actions available in the given state, in menu order.
func DetermineFor(current Current, change Change) []Action {
	switch current {
	case CurrentConfirm:
		actions := []Action{{Kind: ActionAccept}, {Kind: ActionAlways}}
		if len(change.Alternatives) > 0 {
			actions = append(actions, Action{Kind: ActionViewAlternatives})
		}

		if change.FurtherCustomizable() {
			actions = append(actions, Action{Kind: ActionCustomize, Replacement: change.Replacement})
		}

		return append(actions,
			Action{Kind: ActionReplace, Replacement: change.Replacement},
			Action{Kind: ActionSkip},
			Action{Kind: ActionRefuse},
			Action{Kind: ActionIgnore},
			Action{Kind: ActionAbort},
		)
	case CurrentRescue:
		var actions []Action
		if change.FurtherCustomizable() {
			actions = append(actions, Action{Kind: ActionCustomize, Replacement: change.Replacement})
		}

		return append(actions,
			Action{Kind: ActionReplace, Replacement: change.Replacement},
			Action{Kind: ActionSkip},
			Action{Kind: ActionRefuse},
			Action{Kind: ActionAbort},
		)
	default:
		return nil
	}
}

// ActionFrom maps a confirmation to its action.
func ActionFrom(c m.Confirmation) Action {
	switch c.Kind {
	case m.ConfirmAccept:
		return Action{Kind: ActionAccept}
	case m.ConfirmAlways:
		return Action{Kind: ActionAlways}
	case m.ConfirmSkip:
		return Action{Kind: ActionSkip}
	case m.ConfirmRefuse:
		return Action{Kind: ActionRefuse}
	case m.ConfirmIgnore:
		return Action{Kind: ActionIgnore}
	case m.ConfirmAbort:
		return Action{Kind: ActionAbort}
	default:
		return Action{Kind: ActionReplace, Replacement: c.Replacement}
	}
}

// Confirmation converts the action for the engine. Menu-only actions
// (customize, view alternatives, cancel) have no confirmation.
func (a Action) Confirmation() (m.Confirmation, bool) {
	switch a.Kind {
	case ActionAccept:
		return m.Accept(), true
	case ActionAlways:
		return m.Always(), true
	case ActionReplace:
		return m.Replace(a.Replacement), true
	case ActionSkip:
		return m.Skip(), true
	case ActionRefuse:
		return m.Refuse(), true
	case ActionIgnore:
		return m.Ignore(), true
	case ActionAbort:
		return m.Abort(), true
	default:
		return m.Confirmation{}, false
	}
}

// Shortcut returns the key bound to the action, if any.
func (a Action) Shortcut() (rune, bool) {
	switch a.Kind {
	case ActionAccept:
		return 'Y', true
	case ActionAlways:
		return 'A', true
	case ActionViewAlternatives:
		return 'V', true
	case ActionCustomize:
		return 'C', true
	case ActionSkip:
		return 'S', true
	case ActionRefuse:
		return 'R', true
	case ActionIgnore:
		return 'I', true
	case ActionAbort:
		return 'Q', true
	default:
		return 0, false
	}
}

// Label describes the action in menus.
func (a Action) Label() string {
	switch a.Kind {
	case ActionAccept:
		return "Yes, accept the rename and continue"
	case ActionAlways:
		return "Always accept similar renames and continue"
	case ActionViewAlternatives:
		return "View other possibilities"
	case ActionCustomize:
		return "Customize the rename"
	case ActionReplace:
		return "Rename with this name"
	case ActionSkip:
		return "Skip renaming this file"
	case ActionRefuse:
		return "Refuse the rename and continue"
	case ActionIgnore:
		return "Ignore all similar renames and continue"
	case ActionAbort:
		return "Quit now, refusing this rename"
	default:
		return "Cancel"
	}
}

// findAction returns the action of actions bound to key, case-insensitively.
func findAction(actions []Action, key rune) (Action, bool) {
	key = unicode.ToUpper(key)

	for _, a := range actions {
		if shortcut, ok := a.Shortcut(); ok && shortcut == key {
			return a, true
		}
	}

	return Action{}, false
}

// containsKind reports whether an action of the given kind is available.
func containsKind(actions []Action, kind ActionKind) bool {
	for _, a := range actions {
		if a.Kind == kind {
			return true
		}
	}

	return false
}
