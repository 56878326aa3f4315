package element

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Node is implemented by every element of a document tree.
type Node interface {
	// Validate checks required fields, then every child, and returns the
	// first failure unchanged.
	Validate() error
	// Get flattens the node into a fresh ordered mapping.
	Get() *Map
}

// Setter validates one raw field value and stores it.
type Setter func(v any) error

// Setters maps canonical field names to their setters.
type Setters map[string]Setter

// Element is the schema-driven core shared by every entity. Entities embed
// *Element, declare a Schema and supply a Setters table; populating,
// validation and flattening are implemented here once.
//
// An Element is not safe for concurrent mutation.
type Element struct {
	schema *Schema
	opts   Options
	values map[string]any
}

// New returns an element with every field at its default: nil, or an empty
// list for list fields.
func New(schema *Schema, opts Options) *Element {
	e := &Element{
		schema: schema,
		opts:   opts,
		values: make(map[string]any, len(schema.fields)),
	}
	for _, f := range schema.fields {
		if f.List {
			e.values[f.Name] = []Node{}
		} else {
			e.values[f.Name] = nil
		}
	}
	return e
}

// Schema returns the schema the element was built with.
func (e *Element) Schema() *Schema {
	return e.schema
}

// Options returns the resolved options of the element.
func (e *Element) Options() Options {
	return e.opts
}

// Value returns the stored value of a field.
func (e *Element) Value(name string) any {
	return e.values[name]
}

// Store writes an already validated value. List fields take a []Node.
// Storing into an undeclared field panics.
func (e *Element) Store(name string, v any) {
	f, ok := e.schema.Field(name)
	if !ok {
		panic(fmt.Sprintf("element: %s has no field %q", e.schema.name, name))
	}
	if f.List {
		nodes, ok := v.([]Node)
		if !ok {
			panic(fmt.Sprintf("element: list field %s.%s needs []Node, got %T", e.schema.name, name, v))
		}
		v = nodes
	}
	e.values[name] = v
}

// Append adds one child to a list field.
func (e *Element) Append(name string, n Node) {
	list, _ := e.values[name].([]Node)
	e.Store(name, append(list, n))
}

// Populate feeds input through setters. Input must be a mapping: a *Map is
// read in insertion order, any other string-keyed map in schema order.
// Keys that are not fields of the schema are ignored.
//
// With AllowMultipleErrors every setter failure is collected and returned as
// one KindMultipleErrors error after all keys were processed; otherwise the
// first failure stops the pass and is returned as-is.
func (e *Element) Populate(input any, setters Setters) error {
	entries, ok := mappingEntries(input, e.schema)
	if !ok {
		return NewError(KindInvalidArguments, "invalid arguments")
	}

	collected := NewMultipleError()
	for _, en := range entries {
		name, ok := e.schema.Resolve(en.key)
		if !ok {
			continue
		}
		set, ok := setters[name]
		if !ok {
			continue
		}
		if err := set(en.value); err != nil {
			if !e.opts.AllowMultipleErrors {
				return err
			}
			collected.Add(err)
		}
	}
	return collected.Err()
}

// Validate checks that every required field is set, in declaration order,
// and then validates every child element in field order. The first failure
// is returned without wrapping. Validate does not modify the element.
func (e *Element) Validate() error {
	for _, f := range e.schema.fields {
		if f.Required && isEmpty(e.values[f.Name]) {
			return NewError(KindEmptyField, f.Name+" is empty")
		}
	}

	for _, f := range e.schema.fields {
		switch v := e.values[f.Name].(type) {
		case []Node:
			for _, child := range v {
				if err := child.Validate(); err != nil {
					return err
				}
			}
		case Node:
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Get returns the canonical form of the element: a new ordered mapping in
// declaration order where unset optional fields are omitted, children are
// replaced by their own Get output and lists are rebuilt the same way.
//
// Get does not check required fields: a required field that is still nil is
// emitted as nil. Call Validate first, or use ToJSON which does both.
func (e *Element) Get() *Map {
	out := NewMap()
	for _, f := range e.schema.fields {
		v := e.values[f.Name]
		if !f.Required && isEmpty(v) {
			continue
		}
		switch t := v.(type) {
		case []Node:
			list := make([]any, 0, len(t))
			for _, child := range t {
				list = append(list, child.Get())
			}
			out.Set(f.Name, list)
		case Node:
			out.Set(f.Name, t.Get())
		default:
			out.Set(f.Name, v)
		}
	}
	return out
}

// ToJSON validates the element and encodes its canonical form. Nothing is
// encoded when validation fails.
func (e *Element) ToJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(e.Get())
}

// MarshalJSON implements json.Marshaler through ToJSON, so an invalid
// element can never be encoded.
func (e *Element) MarshalJSON() ([]byte, error) {
	return e.ToJSON()
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if list, ok := v.([]Node); ok {
		return len(list) == 0
	}
	return false
}

type entry struct {
	key   string
	value any
}

// IsMapping reports whether v can be used as element input.
func IsMapping(v any) bool {
	if _, ok := v.(*Map); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func mappingEntries(input any, schema *Schema) ([]entry, bool) {
	if m, ok := input.(*Map); ok {
		entries := make([]entry, 0, m.Len())
		for k, v := range m.All() {
			entries = append(entries, entry{key: k, value: v})
		}
		return entries, true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	var entries []entry
	for _, key := range schema.inputKeys() {
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			continue
		}
		entries = append(entries, entry{key: key, value: v.Interface()})
	}
	return entries, true
}
