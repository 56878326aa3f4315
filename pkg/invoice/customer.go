package invoice

import "github.com/dmitrymomot/invoicekit/pkg/element"

// Customer field names.
const (
	FieldCustomerID   = "ID"
	FieldName         = "Nume"
	FieldVAT          = "CIF"
	FieldAddress      = "Adresa"
	FieldBankAccounts = "ConturiBancare"
)

var CustomerSchema = element.NewSchema("Customer",
	element.Field{Name: FieldCustomerID},
	element.Field{Name: FieldName, Required: true},
	element.Field{Name: FieldVAT, Required: true},
	element.Field{Name: FieldAddress, Required: true},
	element.Field{Name: FieldBankAccounts, List: true},
)

// Customer is the buyer of an invoice.
type Customer struct {
	*element.Element
}

func NewCustomer(input any, opts ...element.Option) (*Customer, error) {
	c := &Customer{Element: element.New(CustomerSchema, element.NewOptions(opts...))}
	err := c.Populate(input, element.Setters{
		FieldCustomerID: c.SetID,
		FieldName:       c.SetName,
		FieldVAT:        c.SetVAT,
		FieldAddress:    c.SetAddress,
		FieldBankAccounts: func(v any) error {
			v, err := element.Children(v, c.Options(), NewBankAccount)
			if err != nil {
				return err
			}
			return c.SetBankAccounts(v)
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the optional customer identifier.
func (c *Customer) ID() string { return stringValue(c.Element, FieldCustomerID) }

func (c *Customer) SetID(v any) error {
	return setString(c.Element, FieldCustomerID, v, ErrInvalidCustomerID)
}

func (c *Customer) Name() string { return stringValue(c.Element, FieldName) }

func (c *Customer) SetName(v any) error {
	return setString(c.Element, FieldName, v, ErrInvalidCustomerName)
}

// VAT returns the fiscal identification code.
func (c *Customer) VAT() string { return stringValue(c.Element, FieldVAT) }

func (c *Customer) SetVAT(v any) error {
	return setString(c.Element, FieldVAT, v, ErrInvalidCustomerVAT)
}

func (c *Customer) Address() string { return stringValue(c.Element, FieldAddress) }

func (c *Customer) SetAddress(v any) error {
	return setString(c.Element, FieldAddress, v, ErrInvalidCustomerAddress)
}

func (c *Customer) BankAccounts() []*BankAccount {
	return element.ListOf[*BankAccount](c.Value(FieldBankAccounts))
}

func (c *Customer) SetBankAccounts(v any) error {
	return setChildren[*BankAccount](c.Element, FieldBankAccounts, v, ErrInvalidCustomerBankAccounts)
}

func (c *Customer) AddBankAccount(a *BankAccount) error {
	return addChild(c.Element, FieldBankAccounts, a, ErrInvalidCustomerBankAccount)
}
