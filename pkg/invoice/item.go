package invoice

import (
	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

// Item field names.
const (
	FieldItemID      = "NrCrt"
	FieldDescription = "Denumire"
	FieldCurrency    = "UnitateMonetara"
	FieldQuantity    = "Cantitate"
	FieldPrice       = "ValoareUnitara"
	FieldItemVAT     = "TVA"
)

var ItemSchema = element.NewSchema("Item",
	element.Field{Name: FieldItemID, Required: true},
	element.Field{Name: FieldDescription, Required: true},
	element.Field{Name: FieldCurrency, Required: true},
	element.Field{Name: FieldQuantity, Required: true},
	element.Field{Name: FieldPrice, Required: true},
	element.Field{Name: FieldItemVAT, Required: true},
)

// Item is one invoice line.
type Item struct {
	*element.Element
}

func NewItem(input any, opts ...element.Option) (*Item, error) {
	it := &Item{Element: element.New(ItemSchema, element.NewOptions(opts...))}
	err := it.Populate(input, element.Setters{
		FieldItemID:      it.SetID,
		FieldDescription: it.SetDescription,
		FieldCurrency:    it.SetCurrency,
		FieldQuantity:    it.SetQuantity,
		FieldPrice:       it.SetPrice,
		FieldItemVAT:     it.SetVAT,
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// ID returns the line number.
func (it *Item) ID() int64 {
	id, _ := it.Value(FieldItemID).(int64)
	return id
}

// SetID accepts any unsigned number and stores it truncated to an integer.
func (it *Item) SetID(v any) error {
	if !validator.CheckNumber(v, true, true) {
		return fail(ErrInvalidItemID)
	}
	id, _ := validator.Int64(v)
	it.Store(FieldItemID, id)
	return nil
}

func (it *Item) Description() string { return stringValue(it.Element, FieldDescription) }

func (it *Item) SetDescription(v any) error {
	return setString(it.Element, FieldDescription, v, ErrInvalidItemDescription)
}

func (it *Item) Currency() string { return stringValue(it.Element, FieldCurrency) }

// SetCurrency accepts any non-empty string, or only ISO 4217 codes when
// currency validation is enabled.
func (it *Item) SetCurrency(v any) error {
	if !validator.CheckCurrency(v, it.Options().ValidateCurrency) {
		return fail(ErrInvalidItemCurrency)
	}
	it.Store(FieldCurrency, v.(string))
	return nil
}

func (it *Item) Quantity() float64 { return floatValue(it.Element, FieldQuantity) }

// SetQuantity accepts a positive number.
func (it *Item) SetQuantity(v any) error {
	return setFloat(it.Element, FieldQuantity, v, false, ErrInvalidItemQuantity)
}

// Price returns the unit price.
func (it *Item) Price() float64 { return floatValue(it.Element, FieldPrice) }

func (it *Item) SetPrice(v any) error {
	return setFloat(it.Element, FieldPrice, v, true, ErrInvalidItemPrice)
}

func (it *Item) VAT() float64 { return floatValue(it.Element, FieldItemVAT) }

func (it *Item) SetVAT(v any) error {
	return setFloat(it.Element, FieldItemVAT, v, true, ErrInvalidItemVAT)
}
