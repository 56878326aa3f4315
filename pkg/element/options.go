package element

// Options holds the flags that tune how an element is built. A value is
// resolved once per element and never changes afterwards.
type Options struct {
	// AllowMultipleErrors collects every field failure of a populate pass
	// into one KindMultipleErrors error instead of stopping at the first.
	AllowMultipleErrors bool
	// ValidateIBAN runs the full IBAN check on bank account numbers.
	ValidateIBAN bool
	// ValidateCurrency restricts item currencies to ISO 4217 codes.
	ValidateCurrency bool
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions returns the defaults: aggregated errors, lenient IBAN and
// currency checks.
func DefaultOptions() Options {
	return Options{AllowMultipleErrors: true}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func WithMultipleErrors(allow bool) Option {
	return func(o *Options) { o.AllowMultipleErrors = allow }
}

func WithIBANValidation(enabled bool) Option {
	return func(o *Options) { o.ValidateIBAN = enabled }
}

func WithCurrencyValidation(enabled bool) Option {
	return func(o *Options) { o.ValidateCurrency = enabled }
}

// WithOptions replaces the whole option set. Parents use it to hand their
// resolved options down to the children they build.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// WithFlags overlays a loosely-typed flag map, see Options.Merge.
func WithFlags(flags map[string]any) Option {
	return func(o *Options) { *o = o.Merge(flags) }
}

// flagKeys lists every accepted flag spelling. When several spellings of
// the same flag are present, the later entry wins.
var flagKeys = []struct {
	name string
	set  func(*Options, bool)
}{
	{"allow_multiple_exceptions", func(o *Options, v bool) { o.AllowMultipleErrors = v }},
	{"allow_multiple_errors", func(o *Options, v bool) { o.AllowMultipleErrors = v }},
	{"allowMultipleErrors", func(o *Options, v bool) { o.AllowMultipleErrors = v }},
	{"validate_iban", func(o *Options, v bool) { o.ValidateIBAN = v }},
	{"validateIBAN", func(o *Options, v bool) { o.ValidateIBAN = v }},
	{"validate_currency", func(o *Options, v bool) { o.ValidateCurrency = v }},
	{"validateCurrencyCode", func(o *Options, v bool) { o.ValidateCurrency = v }},
	{"validateCurrency", func(o *Options, v bool) { o.ValidateCurrency = v }},
}

// Merge returns a copy of o with every recognised boolean flag applied.
// Unknown keys and non-boolean values are ignored and keep the current value.
func (o Options) Merge(flags map[string]any) Options {
	for _, key := range flagKeys {
		raw, ok := flags[key.name]
		if !ok {
			continue
		}
		if v, ok := raw.(bool); ok {
			key.set(&o, v)
		}
	}
	return o
}
