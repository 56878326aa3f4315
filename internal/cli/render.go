package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/pkg/document"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Print the canonical form of an invoice document",
	Long: `Builds and validates the invoice in the document and prints it with
fields in schema order and empty optional fields removed.

Errors are printed like the validate command and the exit status is 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOutput      string
	renderIndent      bool
	renderInputFormat string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", string(document.FormatJSON), "Output format: json, yaml or toml")
	renderCmd.Flags().BoolVar(&renderIndent, "indent", false, "Indent JSON output")
	addInputFlags(renderCmd, &renderInputFormat)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	out, err := document.ParseFormat(renderOutput)
	if err != nil {
		return err
	}

	v, err := readDocument(cmd, path, renderInputFormat)
	if err != nil {
		return err
	}

	if out == document.FormatJSON {
		data, err := factory.Render(ctx, v)
		if err != nil {
			report(cmd.ErrOrStderr(), err)
			return errRejected
		}
		if renderIndent {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			data = buf.Bytes()
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		appLogger.DebugContext(ctx, "document rendered", logger.Path(path))
		return nil
	}

	inv, err := factory.Check(ctx, v)
	if err != nil {
		report(cmd.ErrOrStderr(), err)
		return errRejected
	}
	if err := document.Encode(cmd.OutOrStdout(), inv.Get(), out, renderIndent); err != nil {
		return err
	}
	appLogger.DebugContext(ctx, "document rendered", logger.Path(path))
	return nil
}
