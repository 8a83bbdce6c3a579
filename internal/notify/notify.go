// Package notify alerts supervisors outside the console when an operator is
// denied a restricted module.
package notify

import (
	"context"
	"errors"

	"github.com/hochfrequenz/erp-console/internal/domain"
)

// Alert is a denied access attempt seen from a given store
type Alert struct {
	Store  string
	Record domain.AuditRecord
}

// Title is the headline shown by every channel
func (a Alert) Title() string {
	if a.Store == "" {
		return "Usuario no autorizado"
	}
	return "Usuario no autorizado en " + a.Store
}

// Notifier delivers alerts. Implementations must honour ctx so a slow
// channel cannot hold the menu.
type Notifier interface {
	Send(ctx context.Context, a Alert) error
}

// MultiNotifier sends to every notifier, continuing past failures
type MultiNotifier []Notifier

// Send delivers the alert to all notifiers and joins their errors
func (m MultiNotifier) Send(ctx context.Context, a Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Send(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
