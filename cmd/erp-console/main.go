package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	userFlag   string
	levelFlag  int
	rootCmd    = &cobra.Command{
		Use:   "erp-console",
		Short: "ERP Console - commercial management menu",
		Long: `ERP Console is the text-mode main menu of the commercial management
system. It lists the ERP modules, checks the operator's authorization level
before opening restricted ones and keeps an audit trail of denied attempts.`,
		SilenceUsage: true,
		RunE:         runMenu,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "operator user id (overrides config)")
	rootCmd.PersistentFlags().IntVar(&levelFlag, "level", 0, "operator authorization level (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
