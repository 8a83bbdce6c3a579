// Package prompt implements the guarded month/year form used before
// generating IVA reports.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
)

// field describes one constrained numeric input of the form
type field struct {
	label   string
	valid   func(int) bool
	invalid string
}

var (
	monthField = field{
		label:   "Indique mes  (1-12, Enter=cancelar): ",
		valid:   domain.ValidMonth,
		invalid: "Mes inválido. Ingrese un valor entre 1 y 12.",
	}
	yearField = field{
		label:   "Indique año  (0-9999, Enter=cancelar): ",
		valid:   domain.ValidYear,
		invalid: "Año inválido. Ingrese un valor entre 0 y 9999.",
	}
)

// MonthYear asks for a month and then a year, re-asking each field until it
// is valid. An empty line at either field cancels the whole form and ok is
// false. End of input counts as cancellation.
func MonthYear(con *console.Console, title string) (domain.Period, bool, error) {
	con.Println("")
	con.Println(con.Form(title))

	month, ok, err := ask(con, monthField)
	if err != nil || !ok {
		return domain.Period{}, false, err
	}
	con.Printf("  Mes seleccionado: %s\n", domain.MonthName(month))

	year, ok, err := ask(con, yearField)
	if err != nil || !ok {
		return domain.Period{}, false, err
	}
	con.Printf("  Año seleccionado: %04d\n", year)

	return domain.Period{Month: month, Year: year}, true, nil
}

// ask repeats until the field holds a valid integer or the operator backs out
func ask(con *console.Console, f field) (int, bool, error) {
	for {
		line, err := con.ReadLine("  " + f.label)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return 0, false, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			con.Println("  " + con.Warning("Ingrese un número."))
			continue
		}
		if !f.valid(n) {
			con.Println("  " + con.Warning(f.invalid))
			continue
		}
		return n, true, nil
	}
}
