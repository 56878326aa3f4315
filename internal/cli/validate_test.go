package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invalidReport = "invalid_invoice_series: invalid invoice series\n" +
	"invalid_invoice_date: invalid invoice date\n" +
	"invalid_item_quantity: invalid item quantity\n"

const ibanInvoiceJSON = `{
	"Serie": "INV", "Numar": "7", "DataEmitere": "2024-01-15", "DataScadenta": "2024-02-15",
	"Cumparator": {"Nume": "Acme SRL", "CIF": "RO123", "Adresa": "Cluj"},
	"Furnizor": {
		"Nume": "Supplier SA", "Adresa": "Bucuresti", "CIF": "RO456", "NumarRegistruComert": "J40/1/2020",
		"ConturiBancare": [{"NumeBanca": "Banca Test", "NumarContBancar": "RO00NOTANIBAN"}]
	},
	"Bunuri": [{"NrCrt": 1, "Denumire": "Consulting", "UnitateMonetara": "RON", "Cantitate": 1, "ValoareUnitara": 10, "TVA": 19}]
}`

func TestValidateCmd_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := execute(t, "", "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestValidateCmd_ValidDocument(t *testing.T) {
	for _, name := range []string{"invoice.json", "invoice.toml"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, "", "validate", filepath.Join("testdata", name))

			require.NoError(t, err)
			assert.Equal(t, "valid\n", out)
		})
	}
}

func TestValidateCmd_ReportsEveryError(t *testing.T) {
	out, _, err := execute(t, "", "validate", filepath.Join("testdata", "invalid.json"))

	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, invalidReport, out)
}

func TestValidateCmd_FailFast(t *testing.T) {
	out, _, err := execute(t, "", "validate", "--allow-multiple-errors=false", filepath.Join("testdata", "invalid.json"))

	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "invalid_invoice_series: invalid invoice series\n", out)
}

func TestValidateCmd_FailFastFromEnvironment(t *testing.T) {
	t.Setenv("INVOICE_ALLOW_MULTIPLE_ERRORS", "false")

	out, _, err := execute(t, "", "validate", filepath.Join("testdata", "invalid.json"))
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "invalid_invoice_series: invalid invoice series\n", out)

	out, _, err = execute(t, "", "validate", "--allow-multiple-errors", filepath.Join("testdata", "invalid.json"))
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, invalidReport, out)
}

func TestValidateCmd_IncompleteInvoice(t *testing.T) {
	out, _, err := execute(t, "", "validate", filepath.Join("testdata", "incomplete.yaml"))

	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "empty_field: Furnizor is empty\n", out)
}

func TestValidateCmd_IBANValidation(t *testing.T) {
	out, _, err := execute(t, ibanInvoiceJSON, "validate", "-")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, _, err = execute(t, ibanInvoiceJSON, "validate", "--validate-iban", "-")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "invalid_bank_account_number: invalid bank account number\n", out)
}

func TestValidateCmd_InputFormat(t *testing.T) {
	yamlDoc := "Serie: INV\nNumar: \"1\"\n"

	out, _, err := execute(t, yamlDoc, "validate", "--input-format", "yaml", "-")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "empty_field: DataEmitere is empty\n", out)

	_, _, err = execute(t, "{}", "validate", "--input-format", "xml", "-")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errRejected)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "validate", filepath.Join("testdata", "missing.json"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, errRejected)
}

func TestValidateCmd_Logging(t *testing.T) {
	_, logs, err := execute(t, "", "validate", "--log-level", "debug", "--log-format", "json",
		filepath.Join("testdata", "invoice.json"))

	require.NoError(t, err)
	assert.Contains(t, logs, `"app":"invoicekit"`)
	assert.Contains(t, logs, `"run_id":"`)
	assert.Contains(t, logs, `"msg":"element built"`)
	assert.Contains(t, logs, `"msg":"document valid"`)
}

func TestValidateCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "validate", "--log-level", "loud", filepath.Join("testdata", "invoice.json"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, errRejected)
}
