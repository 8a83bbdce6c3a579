package iva

import (
	"context"

	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
)

// Ledger produces the IVA reports offered by the module
type Ledger interface {
	// GenerateLedger emits the accounting ledger for a period (fer111)
	GenerateLedger(ctx context.Context, side domain.Side, p domain.Period) error
	// AccumulatePeriod totals the ledger over a period (fer112)
	AccumulatePeriod(ctx context.Context, side domain.Side, p domain.Period) error
	// ProgressionChart plots the ledger's progression (fer113)
	ProgressionChart(ctx context.Context, side domain.Side) error
}

// PendingLedger announces reports that have not been migrated yet
type PendingLedger struct {
	con *console.Console
}

// NewPendingLedger creates a PendingLedger printing to con
func NewPendingLedger(con *console.Console) *PendingLedger {
	return &PendingLedger{con: con}
}

func (l *PendingLedger) GenerateLedger(_ context.Context, side domain.Side, _ domain.Period) error {
	l.pending("fer111", "Emitir libro IVA "+side.Title())
	return nil
}

func (l *PendingLedger) AccumulatePeriod(_ context.Context, side domain.Side, _ domain.Period) error {
	l.pending("fer112", "Acumulados IVA "+side.Title())
	return nil
}

func (l *PendingLedger) ProgressionChart(_ context.Context, side domain.Side) error {
	l.pending("fer113", "Gráfico progresión IVA "+side.Title())
	return nil
}

func (l *PendingLedger) pending(program, what string) {
	l.con.Printf("\n  [PENDIENTE] %s → %s\n", program, what)
	l.con.Pause()
}
