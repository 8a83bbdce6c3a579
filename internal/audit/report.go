package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hochfrequenz/erp-console/internal/auditstore"
	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how records are printed
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
}

// Lister reads stored audit records
type Lister interface {
	List(ctx context.Context, opts auditstore.ListOptions) ([]domain.AuditRecord, error)
	Count(ctx context.Context) (int, error)
}

// WriteReport prints records in the given format
func WriteReport(w io.Writer, records []domain.AuditRecord, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []domain.AuditRecord{}
		}
		return enc.Encode(records)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(records); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "  Sin registros de auditoría.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  FECHA\tUSUARIO\tDETALLE")
	for _, rec := range records {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", rec.Timestamp.Local().Format("2006-01-02 15:04:05"), rec.User, rec.Detail)
	}
	return tw.Flush()
}

// Viewer shows the latest audit records on the console
type Viewer struct {
	con    *console.Console
	lister Lister
	limit  int
}

// NewViewer creates a Viewer listing at most limit records (0 = all)
func NewViewer(con *console.Console, lister Lister, limit int) *Viewer {
	return &Viewer{con: con, lister: lister, limit: limit}
}

// Show prints the records and waits for the operator
func (v *Viewer) Show(ctx context.Context) error {
	records, err := v.lister.List(ctx, auditstore.ListOptions{Limit: v.limit})
	if err != nil {
		return fmt.Errorf("listing audit records: %w", err)
	}

	total, err := v.lister.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting audit records: %w", err)
	}

	v.con.Println("")
	v.con.Println(v.con.Block("AUDITORÍAS DE OPERACIONES",
		fmt.Sprintf("Registros: %d (mostrando %d)", total, len(records))))
	if err := WriteReport(v.con.Writer(), records, FormatTable); err != nil {
		return err
	}
	v.con.Pause()
	return nil
}
