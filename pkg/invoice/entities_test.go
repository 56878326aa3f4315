package invoice_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
)

func TestItem(t *testing.T) {
	t.Parallel()

	newItem := func(t *testing.T) *invoice.Item {
		t.Helper()
		it, err := invoice.NewItem(element.NewMap())
		require.NoError(t, err)
		return it
	}

	t.Run("line number is truncated to an integer", func(t *testing.T) {
		it := newItem(t)
		for in, want := range map[any]int64{
			3:                  3,
			"4":                4,
			2.9:                2,
			" 7 ":              7,
			json.Number("12"):  12,
			json.Number("1e1"): 10,
			uint8(5):           5,
			0:                  0,
		} {
			require.NoError(t, it.SetID(in), "%v", in)
			assert.Equal(t, want, it.ID(), "%v", in)
		}
	})

	t.Run("line number must be unsigned", func(t *testing.T) {
		it := newItem(t)
		for _, bad := range []any{-1, "-2", "abc", "", nil, true} {
			assert.ErrorIs(t, it.SetID(bad), invoice.ErrInvalidItemID, "%v", bad)
		}
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		it := newItem(t)
		require.NoError(t, it.SetQuantity("1.5"))
		assert.Equal(t, 1.5, it.Quantity())

		for _, bad := range []any{0, "0", 0.0, -1, "x"} {
			assert.ErrorIs(t, it.SetQuantity(bad), invoice.ErrInvalidItemQuantity, "%v", bad)
		}
	})

	t.Run("price and vat allow zero", func(t *testing.T) {
		it := newItem(t)
		require.NoError(t, it.SetPrice(0))
		require.NoError(t, it.SetVAT("19"))
		assert.Equal(t, 0.0, it.Price())
		assert.Equal(t, 19.0, it.VAT())

		assert.ErrorIs(t, it.SetPrice(-0.01), invoice.ErrInvalidItemPrice)
		assert.ErrorIs(t, it.SetVAT("-5"), invoice.ErrInvalidItemVAT)
	})

	t.Run("lenient currency", func(t *testing.T) {
		it := newItem(t)
		assert.NoError(t, it.SetCurrency("lei"))
		assert.NoError(t, it.SetCurrency("XXX"))
		assert.ErrorIs(t, it.SetCurrency(""), invoice.ErrInvalidItemCurrency)
		assert.ErrorIs(t, it.SetCurrency(978), invoice.ErrInvalidItemCurrency)
	})

	t.Run("strict currency", func(t *testing.T) {
		it, err := invoice.NewItem(element.NewMap(), element.WithCurrencyValidation(true))
		require.NoError(t, err)
		assert.NoError(t, it.SetCurrency("RON"))
		assert.NoError(t, it.SetCurrency("EUR"))
		for _, bad := range []string{"ron", "XXX", "XTS", "LEI"} {
			assert.ErrorIs(t, it.SetCurrency(bad), invoice.ErrInvalidItemCurrency, bad)
		}
		assert.Equal(t, "EUR", it.Currency())
	})

	t.Run("currency option reaches nested items", func(t *testing.T) {
		input := decode(t, validInvoiceJSON)
		items, _ := input.Get("Bunuri")
		items.([]any)[0].(*element.Map).Set("UnitateMonetara", "LEI")

		_, err := invoice.NewInvoice(input)
		require.NoError(t, err)

		_, err = invoice.NewInvoice(input, element.WithCurrencyValidation(true))
		assert.Equal(t, []element.Kind{invoice.ErrInvalidItemCurrency.Kind}, kinds(err))
	})
}

func TestBankAccount(t *testing.T) {
	t.Parallel()

	t.Run("lenient account number", func(t *testing.T) {
		a, err := invoice.NewBankAccount(element.NewMap().
			Set("NumeBanca", "Banca Test").
			Set("NumarContBancar", "123-456"))
		require.NoError(t, err)
		assert.Equal(t, "Banca Test", a.BankName())
		assert.Equal(t, "123-456", a.AccountNumber())
		assert.NoError(t, a.Validate())
	})

	t.Run("strict account number", func(t *testing.T) {
		a, err := invoice.NewBankAccount(element.NewMap(), element.WithIBANValidation(true))
		require.NoError(t, err)

		require.NoError(t, a.SetAccountNumber("gb82 west 1234 5698 7654 32"))
		assert.Equal(t, "gb82 west 1234 5698 7654 32", a.AccountNumber())

		for _, bad := range []string{"GB82WEST12345698765433", "123-456", "US02WEST12345698765432"} {
			assert.ErrorIs(t, a.SetAccountNumber(bad), invoice.ErrInvalidBankAccountNumber, bad)
		}
	})

	t.Run("iban option reaches nested accounts", func(t *testing.T) {
		input := decode(t, validInvoiceJSON)
		supplier, _ := input.Get("Furnizor")
		accounts, _ := supplier.(*element.Map).Get("ConturiBancare")
		accounts.([]any)[0].(*element.Map).Set("NumarContBancar", "RO49AAAA1B31007593840001")

		_, err := invoice.NewInvoice(input)
		require.NoError(t, err)

		_, err = invoice.NewInvoice(input, element.WithIBANValidation(true))
		assert.Equal(t, []element.Kind{invoice.ErrInvalidBankAccountNumber.Kind}, kinds(err))
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := invoice.NewBankAccount(element.NewMap().Set("NumeBanca", "").Set("NumarContBancar", ""))
		assert.Equal(t, []element.Kind{
			invoice.ErrInvalidBankName.Kind,
			invoice.ErrInvalidBankAccountNumber.Kind,
		}, kinds(err))
	})
}

func TestCustomer(t *testing.T) {
	t.Parallel()

	t.Run("fields", func(t *testing.T) {
		c, err := invoice.NewCustomer(element.NewMap().
			Set("ID", "C-1").
			Set("Nume", "Acme").
			Set("CIF", "RO1").
			Set("Adresa", "Cluj").
			Set("ConturiBancare", []any{map[string]any{"NumeBanca": "B", "NumarContBancar": "1"}}))
		require.NoError(t, err)
		assert.Equal(t, "C-1", c.ID())
		assert.Equal(t, "Acme", c.Name())
		assert.Equal(t, "RO1", c.VAT())
		assert.Equal(t, "Cluj", c.Address())
		require.Len(t, c.BankAccounts(), 1)
		assert.NoError(t, c.Validate())
	})

	t.Run("id must be a non-empty string when given", func(t *testing.T) {
		_, err := invoice.NewCustomer(element.NewMap().Set("ID", ""))
		assert.ErrorIs(t, err, invoice.ErrInvalidCustomerID)
		_, err = invoice.NewCustomer(element.NewMap().Set("ID", 7))
		assert.ErrorIs(t, err, invoice.ErrInvalidCustomerID)
	})

	t.Run("add bank account", func(t *testing.T) {
		c, err := invoice.NewCustomer(element.NewMap())
		require.NoError(t, err)
		a, err := invoice.NewBankAccount(element.NewMap().Set("NumeBanca", "B").Set("NumarContBancar", "1"))
		require.NoError(t, err)

		require.NoError(t, c.AddBankAccount(a))
		assert.ErrorIs(t, c.AddBankAccount(nil), invoice.ErrInvalidCustomerBankAccount)
		assert.ErrorIs(t, c.SetBankAccounts("none"), invoice.ErrInvalidCustomerBankAccounts)
		assert.Len(t, c.BankAccounts(), 1)
	})

	t.Run("bank accounts are optional", func(t *testing.T) {
		c, err := invoice.NewCustomer(element.NewMap().Set("Nume", "A").Set("CIF", "B").Set("Adresa", "C"))
		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.Equal(t, []string{"Nume", "CIF", "Adresa"}, c.Get().Keys())
	})
}

func TestSupplier(t *testing.T) {
	t.Parallel()

	t.Run("every field is required", func(t *testing.T) {
		s, err := invoice.NewSupplier(element.NewMap())
		require.NoError(t, err)

		steps := []struct {
			set  func() error
			want string
		}{
			{func() error { return s.SetName("Supplier") }, "Adresa is empty"},
			{func() error { return s.SetAddress("Bucuresti") }, "CIF is empty"},
			{func() error { return s.SetVAT("RO456") }, "NumarRegistruComert is empty"},
			{func() error { return s.SetTradeRegistryNumber("J40/1/2020") }, "ConturiBancare is empty"},
		}
		assert.Equal(t, "Nume is empty", s.Validate().Error())
		for _, step := range steps {
			require.NoError(t, step.set())
			assert.Equal(t, step.want, s.Validate().Error())
		}

		a, err := invoice.NewBankAccount(element.NewMap().Set("NumeBanca", "B").Set("NumarContBancar", "1"))
		require.NoError(t, err)
		require.NoError(t, s.AddBankAccount(a))
		assert.NoError(t, s.Validate())
		assert.ErrorIs(t, s.AddBankAccount(nil), invoice.ErrInvalidSupplierBankAccount)
	})

	t.Run("field errors", func(t *testing.T) {
		_, err := invoice.NewSupplier(element.NewMap().
			Set("Nume", 1).
			Set("Adresa", 2).
			Set("CIF", 3).
			Set("NumarRegistruComert", 4).
			Set("ConturiBancare", 5))
		assert.Equal(t, []element.Kind{
			invoice.ErrInvalidSupplierName.Kind,
			invoice.ErrInvalidSupplierAddress.Kind,
			invoice.ErrInvalidSupplierVAT.Kind,
			invoice.ErrInvalidSupplierTradeRegistryNumber.Kind,
			invoice.ErrInvalidSupplierBankAccounts.Kind,
		}, kinds(err))
	})
}

func TestComment(t *testing.T) {
	t.Parallel()

	c, err := invoice.NewComment(element.NewMap().Set("Continut", "Paid in full"))
	require.NoError(t, err)
	assert.Equal(t, "Paid in full", c.Content())

	data, err := c.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Continut":"Paid in full"}`, string(data))

	_, err = invoice.NewComment(element.NewMap().Set("Continut", ""))
	assert.ErrorIs(t, err, invoice.ErrInvalidCommentContent)

	empty, err := invoice.NewComment(element.NewMap())
	require.NoError(t, err)
	_, err = empty.ToJSON()
	assert.EqualError(t, err, "Continut is empty")
}
