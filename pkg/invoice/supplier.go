package invoice

import "github.com/dmitrymomot/invoicekit/pkg/element"

// FieldTradeRegistryNumber is the supplier's trade registry number field.
// The other supplier fields share their names with Customer.
const FieldTradeRegistryNumber = "NumarRegistruComert"

// SupplierSchema requires every field, including at least one bank account.
var SupplierSchema = element.NewSchema("Supplier",
	element.Field{Name: FieldName, Required: true},
	element.Field{Name: FieldAddress, Required: true},
	element.Field{Name: FieldVAT, Required: true},
	element.Field{Name: FieldTradeRegistryNumber, Required: true},
	element.Field{Name: FieldBankAccounts, Required: true, List: true},
)

// Supplier is the issuer of an invoice.
type Supplier struct {
	*element.Element
}

func NewSupplier(input any, opts ...element.Option) (*Supplier, error) {
	s := &Supplier{Element: element.New(SupplierSchema, element.NewOptions(opts...))}
	err := s.Populate(input, element.Setters{
		FieldName:                s.SetName,
		FieldAddress:             s.SetAddress,
		FieldVAT:                 s.SetVAT,
		FieldTradeRegistryNumber: s.SetTradeRegistryNumber,
		FieldBankAccounts: func(v any) error {
			v, err := element.Children(v, s.Options(), NewBankAccount)
			if err != nil {
				return err
			}
			return s.SetBankAccounts(v)
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Supplier) Name() string { return stringValue(s.Element, FieldName) }

func (s *Supplier) SetName(v any) error {
	return setString(s.Element, FieldName, v, ErrInvalidSupplierName)
}

func (s *Supplier) Address() string { return stringValue(s.Element, FieldAddress) }

func (s *Supplier) SetAddress(v any) error {
	return setString(s.Element, FieldAddress, v, ErrInvalidSupplierAddress)
}

func (s *Supplier) VAT() string { return stringValue(s.Element, FieldVAT) }

func (s *Supplier) SetVAT(v any) error {
	return setString(s.Element, FieldVAT, v, ErrInvalidSupplierVAT)
}

func (s *Supplier) TradeRegistryNumber() string {
	return stringValue(s.Element, FieldTradeRegistryNumber)
}

func (s *Supplier) SetTradeRegistryNumber(v any) error {
	return setString(s.Element, FieldTradeRegistryNumber, v, ErrInvalidSupplierTradeRegistryNumber)
}

func (s *Supplier) BankAccounts() []*BankAccount {
	return element.ListOf[*BankAccount](s.Value(FieldBankAccounts))
}

func (s *Supplier) SetBankAccounts(v any) error {
	return setChildren[*BankAccount](s.Element, FieldBankAccounts, v, ErrInvalidSupplierBankAccounts)
}

func (s *Supplier) AddBankAccount(a *BankAccount) error {
	return addChild(s.Element, FieldBankAccounts, a, ErrInvalidSupplierBankAccount)
}
