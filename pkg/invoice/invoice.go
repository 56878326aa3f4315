package invoice

import "github.com/dmitrymomot/invoicekit/pkg/element"

// Invoice field names.
const (
	FieldSeries       = "Serie"
	FieldNumber       = "Numar"
	FieldDate         = "DataEmitere"
	FieldMaturityDate = "DataScadenta"
	FieldCustomer     = "Cumparator"
	FieldSupplier     = "Furnizor"
	FieldItems        = "Bunuri"
	FieldComments     = "Comentarii"
)

// InvoiceSchema declares the invoice fields. Services invoices name the
// supplier "Prestator" and the items "Servicii"; both are accepted as input
// aliases and always written back under the canonical names.
var InvoiceSchema = element.NewSchema("Invoice",
	element.Field{Name: FieldSeries, Required: true},
	element.Field{Name: FieldNumber, Required: true},
	element.Field{Name: FieldDate, Required: true},
	element.Field{Name: FieldMaturityDate, Required: true},
	element.Field{Name: FieldCustomer, Required: true},
	element.Field{Name: FieldSupplier, Required: true, Aliases: []string{"Prestator"}},
	element.Field{Name: FieldItems, Required: true, List: true, Aliases: []string{"Servicii"}},
	element.Field{Name: FieldComments, List: true},
)

// Invoice is the root of an invoice document.
type Invoice struct {
	*element.Element
}

// NewInvoice builds an invoice from a raw mapping. Nested customer,
// supplier, item and comment mappings are built with the same options.
func NewInvoice(input any, opts ...element.Option) (*Invoice, error) {
	inv := &Invoice{Element: element.New(InvoiceSchema, element.NewOptions(opts...))}
	err := inv.Populate(input, element.Setters{
		FieldSeries:       inv.SetSeries,
		FieldNumber:       inv.SetNumber,
		FieldDate:         inv.SetDate,
		FieldMaturityDate: inv.SetMaturityDate,
		FieldCustomer: func(v any) error {
			v, err := element.Child(v, inv.Options(), NewCustomer)
			if err != nil {
				return err
			}
			return inv.SetCustomer(v)
		},
		FieldSupplier: func(v any) error {
			v, err := element.Child(v, inv.Options(), NewSupplier)
			if err != nil {
				return err
			}
			return inv.SetSupplier(v)
		},
		FieldItems: func(v any) error {
			v, err := element.Children(v, inv.Options(), NewItem)
			if err != nil {
				return err
			}
			return inv.SetItems(v)
		},
		FieldComments: func(v any) error {
			v, err := element.Children(v, inv.Options(), NewComment)
			if err != nil {
				return err
			}
			return inv.SetComments(v)
		},
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (inv *Invoice) Series() string { return stringValue(inv.Element, FieldSeries) }

// SetSeries sets the invoice series, a non-empty string.
func (inv *Invoice) SetSeries(v any) error {
	return setString(inv.Element, FieldSeries, v, ErrInvalidSeries)
}

func (inv *Invoice) Number() string { return stringValue(inv.Element, FieldNumber) }

// SetNumber sets the invoice number, a non-empty string.
func (inv *Invoice) SetNumber(v any) error {
	return setString(inv.Element, FieldNumber, v, ErrInvalidNumber)
}

func (inv *Invoice) Date() string { return stringValue(inv.Element, FieldDate) }

// SetDate sets the issue date, formatted YYYY-MM-DD.
func (inv *Invoice) SetDate(v any) error {
	return setDate(inv.Element, FieldDate, v, ErrInvalidDate)
}

func (inv *Invoice) MaturityDate() string { return stringValue(inv.Element, FieldMaturityDate) }

// SetMaturityDate sets the due date, formatted YYYY-MM-DD.
func (inv *Invoice) SetMaturityDate(v any) error {
	return setDate(inv.Element, FieldMaturityDate, v, ErrInvalidMaturityDate)
}

func (inv *Invoice) Customer() *Customer {
	c, _ := inv.Value(FieldCustomer).(*Customer)
	return c
}

// SetCustomer accepts a built *Customer.
func (inv *Invoice) SetCustomer(v any) error {
	return setChild[*Customer](inv.Element, FieldCustomer, v, ErrInvalidCustomer)
}

func (inv *Invoice) Supplier() *Supplier {
	s, _ := inv.Value(FieldSupplier).(*Supplier)
	return s
}

// SetSupplier accepts a built *Supplier.
func (inv *Invoice) SetSupplier(v any) error {
	return setChild[*Supplier](inv.Element, FieldSupplier, v, ErrInvalidSupplier)
}

func (inv *Invoice) Items() []*Item {
	return element.ListOf[*Item](inv.Value(FieldItems))
}

// SetItems replaces the items with a list of built *Item values.
func (inv *Invoice) SetItems(v any) error {
	return setChildren[*Item](inv.Element, FieldItems, v, ErrInvalidItems)
}

// AddItem appends one item.
func (inv *Invoice) AddItem(item *Item) error {
	return addChild(inv.Element, FieldItems, item, ErrInvalidItem)
}

func (inv *Invoice) Comments() []*Comment {
	return element.ListOf[*Comment](inv.Value(FieldComments))
}

// SetComments replaces the comments with a list of built *Comment values.
func (inv *Invoice) SetComments(v any) error {
	return setChildren[*Comment](inv.Element, FieldComments, v, ErrInvalidComments)
}

// AddComment appends one comment.
func (inv *Invoice) AddComment(c *Comment) error {
	return addChild(inv.Element, FieldComments, c, ErrInvalidComment)
}
