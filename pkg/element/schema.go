package element

import "fmt"

// Field declares one slot of an element.
type Field struct {
	Name string
	// Required fields must hold a non-nil value, or a non-empty list, for the
	// element to pass Validate. Optional fields are dropped from Get output
	// while unset.
	Required bool
	// List fields hold an ordered list of child elements and start empty.
	List bool
	// Aliases are alternative input keys routed to this field.
	Aliases []string
}

// Schema describes the fields of one entity type. Schemas are built once at
// package initialisation and never modified.
type Schema struct {
	name   string
	fields []Field
	keys   map[string]string
}

// NewSchema builds a schema from its field declarations, in output order.
// It panics on duplicate names or aliases, since that is a programming error
// caught at start-up.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		keys:   make(map[string]string, len(fields)),
	}
	copy(s.fields, fields)

	for _, f := range fields {
		for _, key := range append([]string{f.Name}, f.Aliases...) {
			if _, dup := s.keys[key]; dup {
				panic(fmt.Sprintf("element: schema %s declares %q twice", name, key))
			}
			s.keys[key] = f.Name
		}
	}
	return s
}

// Name returns the entity name.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the field declarations in output order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the declaration of the named field.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the names of the required fields in declaration order.
func (s *Schema) Required() []string {
	var names []string
	for _, f := range s.fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Resolve maps an input key, canonical or alias, to its field name.
func (s *Schema) Resolve(key string) (string, bool) {
	name, ok := s.keys[key]
	return name, ok
}

// inputKeys lists every key the schema accepts, canonical names first and
// each followed by its aliases, in declaration order.
func (s *Schema) inputKeys() []string {
	keys := make([]string, 0, len(s.keys))
	for _, f := range s.fields {
		keys = append(keys, f.Name)
		keys = append(keys, f.Aliases...)
	}
	return keys
}
