package invoice

import "github.com/dmitrymomot/invoicekit/pkg/element"

// Field failures. Every setter reports exactly one of these; errors.Is
// matches them by kind, also inside a KindMultipleErrors collection.
var (
	ErrInvalidSeries       = element.NewError("invalid_invoice_series", "invalid invoice series")
	ErrInvalidNumber       = element.NewError("invalid_invoice_number", "invalid invoice number")
	ErrInvalidDate         = element.NewError("invalid_invoice_date", "invalid invoice date")
	ErrInvalidMaturityDate = element.NewError("invalid_invoice_maturity_date", "invalid invoice maturity date")
	ErrInvalidCustomer     = element.NewError("invalid_invoice_customer", "invalid invoice customer")
	ErrInvalidSupplier     = element.NewError("invalid_invoice_supplier", "invalid invoice supplier")
	ErrInvalidItems        = element.NewError("invalid_invoice_items", "invalid invoice items")
	ErrInvalidItem         = element.NewError("invalid_invoice_item", "invalid invoice item")
	ErrInvalidComments     = element.NewError("invalid_invoice_comments", "invalid invoice comments")
	ErrInvalidComment      = element.NewError("invalid_invoice_comment", "invalid invoice comment")

	ErrInvalidCustomerID           = element.NewError("invalid_customer_id", "invalid customer id")
	ErrInvalidCustomerName         = element.NewError("invalid_customer_name", "invalid customer name")
	ErrInvalidCustomerVAT          = element.NewError("invalid_customer_vat", "invalid customer vat number")
	ErrInvalidCustomerAddress      = element.NewError("invalid_customer_address", "invalid customer address")
	ErrInvalidCustomerBankAccount  = element.NewError("invalid_customer_bank_account", "invalid customer bank account")
	ErrInvalidCustomerBankAccounts = element.NewError("invalid_customer_bank_accounts", "invalid customer bank accounts")

	ErrInvalidSupplierName                = element.NewError("invalid_supplier_name", "invalid supplier name")
	ErrInvalidSupplierAddress             = element.NewError("invalid_supplier_address", "invalid supplier address")
	ErrInvalidSupplierVAT                 = element.NewError("invalid_supplier_vat", "invalid supplier vat number")
	ErrInvalidSupplierTradeRegistryNumber = element.NewError("invalid_supplier_trade_registry_number", "invalid supplier trade registry number")
	ErrInvalidSupplierBankAccount         = element.NewError("invalid_supplier_bank_account", "invalid supplier bank account")
	ErrInvalidSupplierBankAccounts        = element.NewError("invalid_supplier_bank_accounts", "invalid supplier bank accounts")

	ErrInvalidBankName          = element.NewError("invalid_bank_name", "invalid bank name")
	ErrInvalidBankAccountNumber = element.NewError("invalid_bank_account_number", "invalid bank account number")

	ErrInvalidItemID          = element.NewError("invalid_item_id", "invalid item id")
	ErrInvalidItemDescription = element.NewError("invalid_item_description", "invalid item description")
	ErrInvalidItemCurrency    = element.NewError("invalid_item_currency", "invalid item currency")
	ErrInvalidItemQuantity    = element.NewError("invalid_item_quantity", "invalid item quantity")
	ErrInvalidItemPrice       = element.NewError("invalid_item_price", "invalid item price")
	ErrInvalidItemVAT         = element.NewError("invalid_item_vat", "invalid item vat")

	ErrInvalidCommentContent = element.NewError("invalid_comment_content", "invalid comment content")
)

// fail returns a fresh error of the sentinel's kind, so callers never share
// or mutate the sentinel itself.
func fail(sentinel *element.Error) error {
	return element.NewError(sentinel.Kind, sentinel.Message)
}
