package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an invoice document",
	Long: `Builds the invoice in the document and validates it.

Prints "valid" when the invoice is complete, otherwise one "kind: message"
line per error, and exits with status 1. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateInputFormat string

func init() {
	addInputFlags(validateCmd, &validateInputFormat)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]
	start := time.Now()

	v, err := readDocument(cmd, path, validateInputFormat)
	if err != nil {
		return err
	}

	if _, err := factory.Check(ctx, v); err != nil {
		report(cmd.OutOrStdout(), err)
		appLogger.InfoContext(ctx, "document rejected",
			logger.Path(path),
			logger.Duration(time.Since(start)),
		)
		return errRejected
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	appLogger.InfoContext(ctx, "document valid",
		logger.Path(path),
		logger.Duration(time.Since(start)),
	)
	return nil
}
