package invoice

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

// Factory builds invoice entities with a shared option set and logs the
// outcome of every build. A Factory holds no mutable state and is safe for
// concurrent use.
type Factory struct {
	opts   element.Options
	logger *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithOptions replaces the option set used for every build.
func WithOptions(opts element.Options) FactoryOption {
	return func(f *Factory) { f.opts = opts }
}

// WithFlags overlays a loosely-typed flag map on the option set, see
// element.Options.Merge.
func WithFlags(flags map[string]any) FactoryOption {
	return func(f *Factory) { f.opts = f.opts.Merge(flags) }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) FactoryOption {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory returns a factory using element.DefaultOptions and a logger
// that discards everything, unless configured otherwise.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		opts:   element.DefaultOptions(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Options returns the option set applied to every build.
func (f *Factory) Options() element.Options {
	return f.opts
}

// Invoice builds an invoice. Per-call options are applied on top of the
// factory's option set.
func (f *Factory) Invoice(ctx context.Context, input any, opts ...element.Option) (*Invoice, error) {
	return build(ctx, f, InvoiceSchema.Name(), NewInvoice, input, opts)
}

func (f *Factory) Customer(ctx context.Context, input any, opts ...element.Option) (*Customer, error) {
	return build(ctx, f, CustomerSchema.Name(), NewCustomer, input, opts)
}

func (f *Factory) Supplier(ctx context.Context, input any, opts ...element.Option) (*Supplier, error) {
	return build(ctx, f, SupplierSchema.Name(), NewSupplier, input, opts)
}

func (f *Factory) BankAccount(ctx context.Context, input any, opts ...element.Option) (*BankAccount, error) {
	return build(ctx, f, BankAccountSchema.Name(), NewBankAccount, input, opts)
}

func (f *Factory) Item(ctx context.Context, input any, opts ...element.Option) (*Item, error) {
	return build(ctx, f, ItemSchema.Name(), NewItem, input, opts)
}

func (f *Factory) Comment(ctx context.Context, input any, opts ...element.Option) (*Comment, error) {
	return build(ctx, f, CommentSchema.Name(), NewComment, input, opts)
}

// Check builds an invoice and validates it.
func (f *Factory) Check(ctx context.Context, input any, opts ...element.Option) (*Invoice, error) {
	inv, err := f.Invoice(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		f.logger.WarnContext(ctx, "invoice is incomplete",
			logger.Entity(InvoiceSchema.Name()),
			logger.Kind(string(element.KindOf(err))),
			logger.Error(err),
		)
		return nil, err
	}
	return inv, nil
}

// Render builds and validates an invoice and returns its canonical JSON.
func (f *Factory) Render(ctx context.Context, input any, opts ...element.Option) ([]byte, error) {
	inv, err := f.Check(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return inv.ToJSON()
}

func build[T element.Node](ctx context.Context, f *Factory, entity string, ctor element.Builder[T], input any, opts []element.Option) (T, error) {
	all := make([]element.Option, 0, len(opts)+1)
	all = append(all, element.WithOptions(f.opts))
	all = append(all, opts...)

	v, err := ctor(input, all...)
	if err != nil {
		errs := element.Flatten(err)
		f.logger.WarnContext(ctx, "element rejected",
			logger.Entity(entity),
			logger.Kind(string(element.KindOf(err))),
			logger.Count(len(errs)),
			logger.Errors(errs...),
		)
		var zero T
		return zero, err
	}

	f.logger.DebugContext(ctx, "element built", logger.Entity(entity))
	return v, nil
}
