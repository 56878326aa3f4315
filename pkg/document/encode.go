package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/invoicekit/pkg/element"
)

// Encode writes v in format f. JSON and YAML keep the order of
// *element.Map values; TOML output lists keys alphabetically. With indent
// set JSON is pretty-printed; YAML and TOML are always indented.
func Encode(w io.Writer, v any, f Format, indent bool) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if indent {
			enc.SetIndent("", "  ")
		}
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		if m, ok := v.(*element.Map); ok {
			v = m.ToMap()
		}
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(indent)
		err = enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}
