package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hochfrequenz/erp-console/internal/audit"
	"github.com/hochfrequenz/erp-console/internal/auditstore"
	"github.com/hochfrequenz/erp-console/internal/catalog"
	"github.com/hochfrequenz/erp-console/internal/config"
	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
	"github.com/hochfrequenz/erp-console/internal/iva"
	"github.com/hochfrequenz/erp-console/internal/menu"
	"github.com/hochfrequenz/erp-console/internal/notify"
	"github.com/hochfrequenz/erp-console/internal/session"
	"github.com/hochfrequenz/erp-console/tui"
	"github.com/spf13/cobra"
)

var (
	auditFormat string
	auditUser   string
	auditLimit  int
)

const viewerLimit = 50

func init() {
	// tui command
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the main menu with a light-bar selector",
		RunE:  runTUI,
	}
	rootCmd.AddCommand(tuiCmd)

	// iva command
	ivaCmd := &cobra.Command{
		Use:   "iva",
		Short: "Open the IVA module directly",
		RunE:  runIVA,
	}
	rootCmd.AddCommand(ivaCmd)

	// audit command
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit trail",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List denied access attempts",
		RunE:  runAuditList,
	}
	listCmd.Flags().StringVar(&auditFormat, "format", "table", "output format: table, json or yaml")
	listCmd.Flags().StringVar(&auditUser, "filter-user", "", "only records of this user")
	listCmd.Flags().IntVar(&auditLimit, "limit", 0, "maximum number of records (0 = all)")
	auditCmd.AddCommand(listCmd)
	rootCmd.AddCommand(auditCmd)
}

// app bundles what every menu command needs
type app struct {
	cfg       *config.Config
	session   *domain.Session
	con       *console.Console
	store     *auditstore.Store
	publisher *audit.Publisher
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithLocalFallback(configPath)
	if err != nil {
		return nil, err
	}

	// Explicit flags win over the config file
	if cmd.Flags().Changed("user") {
		cfg.Session.User = userFlag
	}
	if cmd.Flags().Changed("level") {
		cfg.Session.Level = levelFlag
	}
	return cfg, cfg.Validate()
}

func openStore(cfg *config.Config) (*auditstore.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Audit.DatabasePath), 0755); err != nil {
		return nil, fmt.Errorf("creating audit directory: %w", err)
	}
	store, err := auditstore.New(cfg.Audit.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening audit store: %w", err)
	}
	return store, nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s, err := session.FromConfig(cfg).Login(contextOf(cmd))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	con := console.New(os.Stdin, os.Stdout, cfg.General.Width)
	a := &app{cfg: cfg, session: s, con: con}

	sinks := audit.MultiSink{audit.NewConsoleSink(con)}
	if cfg.Audit.Persist {
		a.store, err = openStore(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, a.store)
	}
	if cfg.Audit.AlertsEnabled() {
		var notifiers notify.MultiNotifier
		if cfg.Audit.DesktopAlerts {
			notifiers = append(notifiers, notify.DesktopNotifier{})
		}
		if cfg.Audit.SlackWebhook != "" {
			notifiers = append(notifiers, notify.NewSlackNotifier(cfg.Audit.SlackWebhook))
		}
		sinks = append(sinks, audit.NewAlertSink(s.Store(), notifiers))
	}
	a.publisher = audit.NewPublisher(sinks)

	return a, nil
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("closing audit store: %v", err)
		}
	}
}

func (a *app) mainMenu(reader menu.Reader) (*menu.Menu, error) {
	mods := catalog.Modules{
		IVA: iva.New(a.con, nil).Run,
	}
	if a.store != nil {
		mods.Audits = audit.NewViewer(a.con, a.store, viewerLimit).Show
	}
	return catalog.MainMenu(a.session, a.con, a.publisher, reader, mods)
}

func runMenu(cmd *cobra.Command, args []string) error {
	return runMainMenu(cmd, nil)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return runMainMenu(cmd, tui.NewSelector())
}

func runMainMenu(cmd *cobra.Command, reader menu.Reader) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	m, err := a.mainMenu(reader)
	if err != nil {
		return err
	}
	return m.Run(contextOf(cmd))
}

func runIVA(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return iva.New(a.con, nil).Run(contextOf(cmd))
}

func runAuditList(cmd *cobra.Command, args []string) error {
	format, err := audit.ParseFormat(auditFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(contextOf(cmd), auditstore.ListOptions{User: auditUser, Limit: auditLimit})
	if err != nil {
		return err
	}
	return audit.WriteReport(cmd.OutOrStdout(), records, format)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
