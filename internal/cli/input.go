package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/pkg/document"
	"github.com/dmitrymomot/invoicekit/pkg/element"
)

// stdinPath makes a command read its document from standard input.
const stdinPath = "-"

func addInputFlags(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "input-format", "f", "",
		"Input format: json, yaml or toml (default: from the file extension, json for stdin)")
}

// readDocument decodes the document named by path.
func readDocument(cmd *cobra.Command, path, format string) (any, error) {
	if path == stdinPath {
		if format == "" {
			format = string(document.FormatJSON)
		}
		return decodeWith(cmd.InOrStdin(), format)
	}
	if format == "" {
		return document.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v, err := decodeWith(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decodeWith(r io.Reader, format string) (any, error) {
	f, err := document.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return document.Decode(r, f)
}

// report prints one "kind: message" line per collected error.
func report(w io.Writer, err error) {
	for _, e := range element.Flatten(err) {
		kind := element.KindOf(e)
		if kind == "" {
			fmt.Fprintln(w, e.Error())
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", kind, e.Error())
	}
}
