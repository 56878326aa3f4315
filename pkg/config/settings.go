package config

import "github.com/dmitrymomot/invoicekit/pkg/element"

// Settings holds the process-wide defaults of the invoicekit tools.
type Settings struct {
	AllowMultipleErrors bool   `env:"INVOICE_ALLOW_MULTIPLE_ERRORS" envDefault:"true"`
	ValidateIBAN        bool   `env:"INVOICE_VALIDATE_IBAN" envDefault:"false"`
	ValidateCurrency    bool   `env:"INVOICE_VALIDATE_CURRENCY" envDefault:"false"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat           string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
}

// LoadSettings loads Settings from the environment and the default .env file.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ElementOptions converts the validation switches into element options.
func (s Settings) ElementOptions() element.Options {
	return element.Options{
		AllowMultipleErrors: s.AllowMultipleErrors,
		ValidateIBAN:        s.ValidateIBAN,
		ValidateCurrency:    s.ValidateCurrency,
	}
}
