package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/document"
	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("json keeps order", func(t *testing.T) {
		v, err := document.Decode(strings.NewReader(`{"b": 1, "a": {"d": true, "c": null}}`), document.FormatJSON)
		require.NoError(t, err)

		m, ok := v.(*element.Map)
		require.True(t, ok)
		assert.Equal(t, []string{"b", "a"}, m.Keys())

		inner, _ := m.Get("a")
		require.IsType(t, &element.Map{}, inner)
		assert.Equal(t, []string{"d", "c"}, inner.(*element.Map).Keys())
	})

	t.Run("yaml keeps order and dates", func(t *testing.T) {
		v, err := document.Decode(strings.NewReader("z: 2024-01-15\ny: [1, 2]\n"), document.FormatYAML)
		require.NoError(t, err)

		m := v.(*element.Map)
		assert.Equal(t, []string{"z", "y"}, m.Keys())
		date, _ := m.Get("z")
		assert.Equal(t, "2024-01-15", date)
	})

	t.Run("toml dates become text", func(t *testing.T) {
		src := "when = 2024-01-15\nat = 1979-05-27T07:32:00Z\n[nested]\nday = 2024-02-29\n"
		v, err := document.Decode(strings.NewReader(src), document.FormatTOML)
		require.NoError(t, err)

		m, ok := v.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2024-01-15", m["when"])
		assert.Equal(t, "1979-05-27T07:32:00Z", m["at"])
		assert.Equal(t, map[string]any{"day": "2024-02-29"}, m["nested"])
	})

	t.Run("empty toml is an empty mapping", func(t *testing.T) {
		v, err := document.DecodeBytes(nil, document.FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	})

	t.Run("non mapping root", func(t *testing.T) {
		_, err := document.DecodeBytes([]byte(`[1, 2]`), document.FormatJSON)
		assert.ErrorIs(t, err, document.ErrDecode)
		assert.ErrorIs(t, err, element.ErrNotMapping)

		_, err = document.DecodeBytes([]byte("- a\n- b\n"), document.FormatYAML)
		assert.ErrorIs(t, err, element.ErrNotMapping)
	})

	t.Run("syntax errors", func(t *testing.T) {
		_, err := document.DecodeBytes([]byte(`{"a":`), document.FormatJSON)
		assert.ErrorIs(t, err, document.ErrDecode)

		_, err = document.DecodeBytes([]byte("a = = 1"), document.FormatTOML)
		assert.ErrorIs(t, err, document.ErrDecode)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := document.DecodeBytes([]byte(`{}`), document.Format("xml"))
		assert.ErrorIs(t, err, document.ErrUnsupportedFormat)
	})
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile(filepath.Join("testdata", "canonical.json"))
	require.NoError(t, err)

	for _, name := range []string{"invoice.json", "invoice.yaml", "invoice.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := document.ReadFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			inv, err := invoice.NewInvoice(v)
			require.NoError(t, err)

			got, err := inv.ToJSON()
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}

	t.Run("invalid content still decodes", func(t *testing.T) {
		t.Parallel()

		v, err := document.ReadFile(filepath.Join("testdata", "invalid.json"))
		require.NoError(t, err)

		_, err = invoice.NewInvoice(v)
		require.Error(t, err)
		assert.Len(t, element.Flatten(err), 3)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := document.ReadFile(filepath.Join("testdata", "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	m := element.NewMap().
		Set("Serie", "INV").
		Set("Bunuri", []any{element.NewMap().Set("NrCrt", int64(1)).Set("Denumire", "Consulting")})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, document.Encode(&buf, m, document.FormatJSON, false))
		assert.Equal(t, `{"Serie":"INV","Bunuri":[{"NrCrt":1,"Denumire":"Consulting"}]}`+"\n", buf.String())

		buf.Reset()
		require.NoError(t, document.Encode(&buf, m, document.FormatJSON, true))
		assert.Contains(t, buf.String(), "\n  \"Serie\": \"INV\",\n")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, document.Encode(&buf, m, document.FormatYAML, false))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Serie: INV\nBunuri:\n"))
		assert.Contains(t, out, "- NrCrt: 1\n")
		assert.Less(t, strings.Index(out, "NrCrt"), strings.Index(out, "Denumire: Consulting"))
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, document.Encode(&buf, m, document.FormatTOML, false))

		back, err := document.DecodeBytes(buf.Bytes(), document.FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"Serie":  "INV",
			"Bunuri": []any{map[string]any{"NrCrt": int64(1), "Denumire": "Consulting"}},
		}, back)
	})

	t.Run("unsupported", func(t *testing.T) {
		err := document.Encode(&bytes.Buffer{}, m, document.Format("xml"), false)
		assert.ErrorIs(t, err, document.ErrUnsupportedFormat)
	})
}
