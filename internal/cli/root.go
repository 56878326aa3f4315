package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/pkg/config"
	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

const appName = "invoicekit"

// errRejected is returned after the collected errors were already printed.
var errRejected = errors.New("document rejected")

type runIDKey struct{}

// Global flags. Flags left unset take their value from config.Settings.
var (
	allowMultipleErrors bool
	validateIBAN        bool
	validateCurrency    bool
	logLevel            string
	logFormat           string
)

var (
	appLogger = logger.Discard()
	factory   = invoice.NewFactory()
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Validate and normalize invoice documents",
	Long: `invoicekit checks invoice documents (JSON, YAML or TOML) against the
invoice schema and prints their canonical form.

Defaults for the global flags come from INVOICE_ALLOW_MULTIPLE_ERRORS,
INVOICE_VALIDATE_IBAN, INVOICE_VALIDATE_CURRENCY, LOG_LEVEL and LOG_FORMAT,
read from the environment or a .env file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&allowMultipleErrors, "allow-multiple-errors", true, "Collect every population error instead of stopping at the first")
	flags.BoolVar(&validateIBAN, "validate-iban", false, "Verify bank account numbers as IBANs")
	flags.BoolVar(&validateCurrency, "validate-currency", false, "Accept only ISO 4217 currency codes")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// setup resolves the effective settings and prepares the logger, the
// factory and a per-run id in the command context.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("allow-multiple-errors") {
		allowMultipleErrors = s.AllowMultipleErrors
	}
	if !flags.Changed("validate-iban") {
		validateIBAN = s.ValidateIBAN
	}
	if !flags.Changed("validate-currency") {
		validateCurrency = s.ValidateCurrency
	}
	if !flags.Changed("log-level") {
		logLevel = s.LogLevel
	}
	if !flags.Changed("log-format") {
		logFormat = s.LogFormat
	}

	if _, err := logger.ParseLevel(logLevel); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(logFormat); err != nil {
		return err
	}

	appLogger = logger.New(
		logger.WithCLI(appName),
		logger.WithSettings(logLevel, logFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	factory = invoice.NewFactory(
		invoice.WithOptions(element.Options{
			AllowMultipleErrors: allowMultipleErrors,
			ValidateIBAN:        validateIBAN,
			ValidateCurrency:    validateCurrency,
		}),
		invoice.WithLogger(appLogger),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, uuid.NewString()))

	appLogger.DebugContext(cmd.Context(), "settings resolved",
		logger.Command(cmd.Name()),
		slog.Bool("allow_multiple_errors", allowMultipleErrors),
		slog.Bool("validate_iban", validateIBAN),
		slog.Bool("validate_currency", validateCurrency),
	)
	return nil
}
