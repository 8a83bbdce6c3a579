package menu

import (
	"context"

	"github.com/hochfrequenz/erp-console/internal/domain"
)

// Kind tells the dispatcher how an entry is resolved
type Kind int

const (
	KindImplemented Kind = iota
	KindRestricted
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindImplemented:
		return "implemented"
	case KindRestricted:
		return "restricted"
	case KindExit:
		return "exit"
	}
	return "unknown"
}

// Action is a business module invoked from a menu. Its error is logged and
// otherwise ignored by the dispatcher.
type Action func(ctx context.Context) error

// Entry is one selectable line of a menu
type Entry struct {
	Code  int
	Label string
	Kind  Kind

	Action Action

	// Restricted entries only
	RequiredLevel domain.AuthLevel
	AuditDetail   string
}

// Implemented builds an entry that anyone may invoke
func Implemented(code int, label string, action Action) Entry {
	return Entry{Code: code, Label: label, Kind: KindImplemented, Action: action}
}

// Restricted builds an entry that requires a minimum authorization level.
// Denied attempts are audited with auditDetail naming the module.
func Restricted(code int, label string, required domain.AuthLevel, auditDetail string, action Action) Entry {
	return Entry{
		Code:          code,
		Label:         label,
		Kind:          KindRestricted,
		Action:        action,
		RequiredLevel: required,
		AuditDetail:   auditDetail,
	}
}

// Exit builds the entry that leaves the menu
func Exit(code int, label string) Entry {
	return Entry{Code: code, Label: label, Kind: KindExit}
}
