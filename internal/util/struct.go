package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized checks whether all nilable fields of the given
// struct (or struct pointer) are non-nil and returns an error naming
// the first uninitialized field.
func IsStructInitialized(v interface{}) error {
	val := reflect.ValueOf(v)

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return errors.New("struct pointer is nil")
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", val.Kind())
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("field %s is not initialized", typ.Field(i).Name)
			}
		default:
			// value types are always considered initialized
		}
	}

	return nil
}
