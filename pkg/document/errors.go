package document

import "errors"

var (
	// ErrUnsupportedFormat is returned for formats other than json, yaml and toml.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrDecode is returned when a document cannot be parsed.
	ErrDecode = errors.New("failed to decode document")

	// ErrEncode is returned when a value cannot be written in the requested format.
	ErrEncode = errors.New("failed to encode document")
)
