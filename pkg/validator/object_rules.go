package validator

import "reflect"

// CheckObject reports whether v holds a value whose dynamic type is exactly T.
// Nil pointers, maps, slices and interfaces never pass.
func CheckObject[T any](v any) bool {
	if _, ok := v.(T); !ok {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// CheckObjectArray reports whether v is a slice or array whose members all
// pass CheckObject[T]. An empty list passes.
func CheckObjectArray[T any](v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !CheckObject[T](rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}
