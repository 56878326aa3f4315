package invoice

import (
	"github.com/dmitrymomot/invoicekit/pkg/element"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

func setString(e *element.Element, field string, v any, sentinel *element.Error) error {
	if !validator.CheckString(v, false) {
		return fail(sentinel)
	}
	e.Store(field, v.(string))
	return nil
}

func setDate(e *element.Element, field string, v any, sentinel *element.Error) error {
	if !validator.CheckDate(v) {
		return fail(sentinel)
	}
	e.Store(field, v.(string))
	return nil
}

func setFloat(e *element.Element, field string, v any, allowZero bool, sentinel *element.Error) error {
	if !validator.CheckNumber(v, allowZero, true) {
		return fail(sentinel)
	}
	f, _ := validator.Float64(v)
	e.Store(field, f)
	return nil
}

func setChild[T element.Node](e *element.Element, field string, v any, sentinel *element.Error) error {
	if !validator.CheckObject[T](v) {
		return fail(sentinel)
	}
	e.Store(field, v)
	return nil
}

func setChildren[T element.Node](e *element.Element, field string, v any, sentinel *element.Error) error {
	if !validator.CheckObjectArray[T](v) {
		return fail(sentinel)
	}
	e.Store(field, element.Nodes(v))
	return nil
}

func addChild[T element.Node](e *element.Element, field string, child T, sentinel *element.Error) error {
	if !validator.CheckObject[T](child) {
		return fail(sentinel)
	}
	e.Append(field, child)
	return nil
}

func stringValue(e *element.Element, field string) string {
	s, _ := e.Value(field).(string)
	return s
}

func floatValue(e *element.Element, field string) float64 {
	f, _ := e.Value(field).(float64)
	return f
}
