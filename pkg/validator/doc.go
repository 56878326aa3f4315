// Package validator provides the field-level predicates used to check raw
// invoice input before it is stored on an element.
//
// Every check takes the untyped value exactly as it arrived from the decoded
// document (a string, a number, a nested element, a list, nil, ...) and
// returns a plain bool. Checks never panic and never return errors; turning a
// failed check into a typed error is the job of the calling setter.
//
// # Architecture
//
// Each source file groups the predicates for one family of values
// (`string_rules.go`, `numeric_rules.go`, `date_rules.go`,
// `financial_rules.go`, `iban_rules.go`, `object_rules.go`). The package holds
// no mutable state and is safe for concurrent use.
//
// Several checks take a strictness flag. With the flag off, CheckCurrency and
// CheckIBAN only require a non-empty string; with it on they verify the value
// against the ISO-4217 code list or the IBAN structure and MOD-97 checksum.
//
// # Usage
//
//	if !validator.CheckIBAN(raw, opts.ValidateIBAN) {
//	    return element.NewError(KindInvalidBankAccountNumber, "invalid bank account number")
//	}
//
//	qty, _ := validator.Float64(raw) // after CheckNumber succeeded
//
// # Coercion
//
// Int64 and Float64 convert any value accepted by CheckNumber into the
// declared numeric type. Integers are truncated toward zero, matching the
// way loosely-typed input has always been cast.
package validator
