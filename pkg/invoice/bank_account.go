package invoice

import (
	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

// Bank account field names.
const (
	FieldBankName      = "NumeBanca"
	FieldAccountNumber = "NumarContBancar"
)

var BankAccountSchema = element.NewSchema("BankAccount",
	element.Field{Name: FieldBankName, Required: true},
	element.Field{Name: FieldAccountNumber, Required: true},
)

// BankAccount is a bank account listed for a customer or supplier.
type BankAccount struct {
	*element.Element
}

func NewBankAccount(input any, opts ...element.Option) (*BankAccount, error) {
	a := &BankAccount{Element: element.New(BankAccountSchema, element.NewOptions(opts...))}
	err := a.Populate(input, element.Setters{
		FieldBankName:      a.SetBankName,
		FieldAccountNumber: a.SetAccountNumber,
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *BankAccount) BankName() string { return stringValue(a.Element, FieldBankName) }

func (a *BankAccount) SetBankName(v any) error {
	return setString(a.Element, FieldBankName, v, ErrInvalidBankName)
}

// AccountNumber returns the account number exactly as it was given.
func (a *BankAccount) AccountNumber() string { return stringValue(a.Element, FieldAccountNumber) }

// SetAccountNumber accepts any non-empty string, or only valid IBANs when
// IBAN validation is enabled. The value is stored unnormalized.
func (a *BankAccount) SetAccountNumber(v any) error {
	if !validator.CheckIBAN(v, a.Options().ValidateIBAN) {
		return fail(ErrInvalidBankAccountNumber)
	}
	a.Store(FieldAccountNumber, v.(string))
	return nil
}
