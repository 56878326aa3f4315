// Package element implements the schema-driven composite that every invoice
// entity is built on.
//
// An entity embeds *Element, declares its fields once in a Schema and hands a
// table of per-field setters to Populate. Element then provides the shared
// protocol:
//
//   - Populate feeds a raw mapping through the setters, ignoring unknown keys
//     and routing aliases to their canonical field.
//   - Validate checks required fields, then every child, and returns the first
//     failure unchanged.
//   - Get flattens the tree into a fresh ordered Map with unset optional
//     fields removed.
//   - ToJSON and MarshalJSON validate before encoding.
//
// # Errors
//
// Every failure is an *Error carrying a Kind and a message. When
// Options.AllowMultipleErrors is set, Populate collects all setter failures
// of one pass into a single KindMultipleErrors error whose children are kept
// flat; errors.Is matches by kind and looks inside collections:
//
//	if errors.Is(err, element.ErrEmptyField) { ... }
//	for _, e := range element.Flatten(err) { ... }
//
// # Children
//
// Child and Children turn raw mappings into child elements before the
// setter runs, using the parent's options. Already built nodes are kept, and
// anything else is left for the setter to reject.
//
// # Ordered input
//
// Map keeps insertion order. DecodeJSON and DecodeYAML produce Maps, so
// multi-error reports follow document order. Plain Go maps are processed in
// schema order instead.
package element
