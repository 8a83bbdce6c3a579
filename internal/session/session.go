// Package session resolves who is operating the console before the main
// menu starts.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/hochfrequenz/erp-console/internal/config"
	"github.com/hochfrequenz/erp-console/internal/domain"
)

// Provider populates the session once at startup
type Provider interface {
	Login(ctx context.Context) (*domain.Session, error)
}

// Static is a Provider that returns fixed values, standing in for the
// login screen that has not been migrated
type Static struct {
	Info domain.SessionInfo
}

// FromConfig builds a Static provider from the loaded configuration
func FromConfig(cfg *config.Config) Static {
	return Static{Info: domain.SessionInfo{
		User:   cfg.Session.User,
		Level:  domain.AuthLevel(cfg.Session.Level),
		Store:  cfg.General.StoreName,
		Spool:  cfg.General.Spool,
		Detail: cfg.General.Detail,
	}}
}

// Login implements Provider
func (s Static) Login(ctx context.Context) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Info.User == "" {
		return nil, errors.New("no user configured for the session")
	}
	if s.Info.Level < domain.LevelNone {
		return nil, fmt.Errorf("invalid authorization level %d", s.Info.Level)
	}
	return domain.NewSession(s.Info), nil
}
