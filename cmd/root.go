// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/catalog"
	configCmd "github.com/Work-Fort/Welcome/cmd/config"
	"github.com/Work-Fort/Welcome/cmd/install"
	"github.com/Work-Fort/Welcome/cmd/returnurl"
	"github.com/Work-Fort/Welcome/cmd/serve"
	"github.com/Work-Fort/Welcome/cmd/status"
	"github.com/Work-Fort/Welcome/cmd/step"
	"github.com/Work-Fort/Welcome/cmd/version"
	"github.com/Work-Fort/Welcome/cmd/wizard"
	"github.com/Work-Fort/Welcome/pkg/config"
)

var (
	// Version is set at build time via ldflags
	// -ldflags "-X github.com/Work-Fort/Welcome/cmd.Version=x.y.z"
	Version string

	logLevel    string
	output      string
	useTUI      bool
	debugLogger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Onboarding wizard helper for the hosting panel",
	Long: `Welcome - onboarding wizard helper for the hosting panel

Resolves where the wizard returns the administrator to, tracks the wizard
step per panel OS, checks and installs the catalog extensions the wizard
offers and asks the panel API whether any domains exist yet.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitDirs(); err != nil {
			return err
		}

		// Load .env and config files now that directories exist
		if err := config.LoadConfig(); err != nil {
			return err
		}

		useTUI = config.GetUseTUI()
		logLevel = config.GetLogLevel()

		if logLevel == "disabled" {
			log.SetOutput(io.Discard)
			return nil
		}

		var level log.Level
		switch logLevel {
		case "info":
			level = log.InfoLevel
		case "warn":
			level = log.WarnLevel
		case "error":
			level = log.ErrorLevel
		default:
			level = log.DebugLevel
		}

		// Always log to file in JSON format
		f, err := os.OpenFile(config.GlobalPaths.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		debugLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
			Level:           level,
			ReportCaller:    true,
			Formatter:       log.JSONFormatter,
		})
		log.SetDefault(debugLogger)

		log.Debug("Command started", "command", cmd.CommandPath(), "local_config", config.IsLocalMode())
		return nil
	},
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := config.CurrentTheme
		fmt.Fprintf(os.Stderr, "%s %s\n", theme.ErrorStyle().Render("Error:"), err.Error())
		os.Exit(1)
	}
}

func init() {
	// Configure logging - will be redirected to file in PersistentPreRunE
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	config.InitViper()

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&logLevel, "log-level", "l", "debug", "Log level: disabled, debug, info, warn, error")
	flags.BoolVar(&useTUI, "use-tui", true, "Enable terminal UI mode")
	flags.StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")

	// Bind flags to Viper for config file and environment variable support
	config.BindFlags(flags)

	rootCmd.AddCommand(catalog.NewCatalogCmd())
	rootCmd.AddCommand(configCmd.NewConfigCmd())
	rootCmd.AddCommand(install.NewInstallCmd())
	rootCmd.AddCommand(returnurl.NewReturnURLCmd())
	rootCmd.AddCommand(serve.NewServeCmd())
	rootCmd.AddCommand(status.NewStatusCmd())
	rootCmd.AddCommand(step.NewStepCmd())
	rootCmd.AddCommand(version.NewVersionCmd(Version))
	rootCmd.AddCommand(wizard.NewWizardCmd())

	rootCmd.SetHelpFunc(styledHelpFunc)
	rootCmd.SetUsageFunc(styledUsageFunc)
	rootCmd.SilenceUsage = true  // Don't show usage on errors
	rootCmd.SilenceErrors = true // We'll handle error printing ourselves
}

// GetRootCommand returns the root command for external use (e.g., man page generation)
func GetRootCommand() *cobra.Command {
	return rootCmd
}
