package element

import "reflect"

// Builder constructs a child element from raw input. Entity constructors
// such as invoice.NewCustomer have this shape.
type Builder[T Node] func(input any, opts ...Option) (T, error)

// Child resolves the raw value of a single-child field. Nodes that are
// already built are returned untouched so the setter can check their type.
// Anything else is handed to build with the parent's options; build rejects
// values that are not mappings.
func Child[T Node](v any, opts Options, build Builder[T]) (any, error) {
	if _, ok := v.(Node); ok {
		return v, nil
	}
	child, err := build(v, WithOptions(opts))
	if err != nil {
		return nil, err
	}
	return child, nil
}

// Children resolves the raw value of a list field. Mapping members are built
// with the parent's options; every other member, and a value that is not a
// list at all, is passed through for the setter to reject. The first build
// failure is returned.
func Children[T Node](v any, opts Options, build Builder[T]) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v, nil
	}

	out := make([]any, rv.Len())
	for i := range rv.Len() {
		item := rv.Index(i).Interface()
		if !IsMapping(item) {
			out[i] = item
			continue
		}
		child, err := build(item, WithOptions(opts))
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

// Nodes converts a checked list of children into the []Node form stored in
// list fields. Members that are not nodes are skipped.
func Nodes(v any) []Node {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []Node{}
	}
	out := make([]Node, 0, rv.Len())
	for i := range rv.Len() {
		if n, ok := rv.Index(i).Interface().(Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// ListOf returns the members of a stored list field that have type T.
func ListOf[T Node](v any) []T {
	nodes, _ := v.([]Node)
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
