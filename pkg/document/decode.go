package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrymomot/invoicekit/pkg/element"
)

// Decode reads a whole document and returns its root mapping.
//
// JSON and YAML documents decode to *element.Map at every level, so field
// order is kept. TOML documents decode to map[string]any; TOML dates and
// times are turned into their textual form.
func Decode(r io.Reader, f Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return DecodeBytes(data, f)
}

// DecodeBytes is Decode for in-memory documents.
func DecodeBytes(data []byte, f Format) (any, error) {
	var (
		v   any
		err error
	)
	switch f {
	case FormatJSON:
		v, err = element.DecodeJSON(data)
	case FormatYAML:
		v, err = element.DecodeYAML(data)
	case FormatTOML:
		v, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if !element.IsMapping(v) {
		return nil, fmt.Errorf("%w: %w: got %T", ErrDecode, element.ErrNotMapping, v)
	}
	return v, nil
}

// ReadFile decodes the file at path, picking the format from its extension.
func ReadFile(path string) (any, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := DecodeBytes(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decodeTOML(data []byte) (any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return normalizeTOML(m), nil
}

func normalizeTOML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeTOML(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeTOML(item)
		}
		return t
	case toml.LocalDate:
		return t.String()
	case toml.LocalDateTime:
		return t.String()
	case toml.LocalTime:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339)
	}
	return v
}
