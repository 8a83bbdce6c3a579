// Package iva is the value-added-tax ledger module. The operator picks the
// sales or purchases ledger, then a report; dated reports first ask for the
// month and year to process.
package iva

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
	"github.com/hochfrequenz/erp-console/internal/prompt"
)

// Operation is a report offered for the chosen ledger side
type Operation int

const (
	OpBack Operation = iota
	OpGenerateLedger
	OpAccumulatePeriod
	OpProgressionChart
)

// Module runs the two-level IVA menu
type Module struct {
	con    *console.Console
	ledger Ledger
}

// New creates the module. A nil ledger selects PendingLedger.
func New(con *console.Console, ledger Ledger) *Module {
	if ledger == nil {
		ledger = NewPendingLedger(con)
	}
	return &Module{con: con, ledger: ledger}
}

// Run loops over side and operation selection until the operator leaves
// the side menu.
func (m *Module) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		side, ok, err := m.chooseSide()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		op, err := m.chooseOperation(side)
		if err != nil {
			return err
		}
		if err := m.perform(ctx, side, op); err != nil {
			return err
		}
	}
}

// chooseSide returns ok=false for anything other than 1 or 2, including
// unreadable or exhausted input.
func (m *Module) chooseSide() (domain.Side, bool, error) {
	m.con.Println("")
	m.con.Println(m.con.Block("MÓDULO IVA",
		"[1]  Ventas",
		"[2]  Compras",
		"[0]  Volver",
	))

	n, err := m.readChoice()
	if err != nil {
		return "", false, err
	}
	switch n {
	case 1:
		return domain.SideVentas, true, nil
	case 2:
		return domain.SideCompras, true, nil
	}
	return "", false, nil
}

// chooseOperation maps anything outside 1..3 to OpBack
func (m *Module) chooseOperation(side domain.Side) (Operation, error) {
	m.con.Println("")
	m.con.Println(m.con.Form("Opciones — IVA "+side.Title(),
		"[1]  Genera libro contable",
		"[2]  Acumulados en período",
		"[3]  Gráfico de progresión",
		"[0]  Volver",
	))

	n, err := m.readChoice()
	if err != nil {
		return OpBack, err
	}
	switch op := Operation(n); op {
	case OpGenerateLedger, OpAccumulatePeriod, OpProgressionChart:
		return op, nil
	}
	return OpBack, nil
}

// perform runs one report. A cancelled period prompt skips the report.
func (m *Module) perform(ctx context.Context, side domain.Side, op Operation) error {
	var err error
	switch op {
	case OpGenerateLedger:
		p, ok, perr := prompt.MonthYear(m.con, "Emisión de libro iva/"+side.Noun())
		if perr != nil || !ok {
			return perr
		}
		m.con.Printf("\n  → Generando libro IVA %s — %s\n", side.Title(), p)
		err = m.ledger.GenerateLedger(ctx, side, p)

	case OpAccumulatePeriod:
		p, ok, perr := prompt.MonthYear(m.con, "Acumulados sobre "+side.Noun())
		if perr != nil || !ok {
			return perr
		}
		m.con.Printf("\n  → Acumulados IVA %s — %s\n", side.Title(), p)
		err = m.ledger.AccumulatePeriod(ctx, side, p)

	case OpProgressionChart:
		err = m.ledger.ProgressionChart(ctx, side)
	}

	if err != nil {
		log.Printf("iva %s report %d failed: %v", side.Noun(), op, err)
	}
	return nil
}

// readChoice returns -1 for non-numeric or exhausted input
func (m *Module) readChoice() (int, error) {
	line, err := m.con.ReadLine("  Seleccione: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return -1, nil
		}
		return -1, fmt.Errorf("reading selection: %w", err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, nil
	}
	return n, nil
}
