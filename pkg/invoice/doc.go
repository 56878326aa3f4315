// Package invoice defines the invoice document entities: Invoice, Customer,
// Supplier, Item, BankAccount and Comment.
//
// Every entity embeds *element.Element and declares its fields in a schema
// whose field names are the document keys (Serie, Numar, Cumparator, ...).
// Constructors take the raw mapping for that entity, typically produced by
// element.DecodeJSON or element.DecodeYAML, and build nested children with
// the same options:
//
//	inv, err := invoice.NewInvoice(raw, element.WithIBANValidation(true))
//	if err != nil {
//	    for _, e := range element.Flatten(err) { ... }
//	}
//	if err := inv.Validate(); err != nil { ... }
//	data, err := inv.ToJSON()
//
// Each setter reports its own error kind (ErrInvalidSeries,
// ErrInvalidBankAccountNumber, ...). Factory wraps the constructors with a
// shared option set and structured logging.
package invoice
