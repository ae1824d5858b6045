// Package config merges partially filled configuration structs.
package config

import (
	"reflect"
)

// Merge copies every set field of source into target. A field is set when it is not
// its zero value; nil and empty slices and maps count as unset. Fields are matched by
// name, so source may be a narrower struct than target.
//
// A nil source is a no-op. Non-struct arguments are ignored.
//
// Example:
//
//	cfg := openai.DefaultConfig()
//	config.Merge(&cfg, &openai.Config{Strict: helpers.PtrOf(true)})
func Merge[T, S any](target *T, source *S) {
	if target == nil || source == nil {
		return
	}

	targetVal := reflect.ValueOf(target).Elem()
	sourceVal := reflect.ValueOf(source).Elem()
	if targetVal.Kind() != reflect.Struct || sourceVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < sourceVal.NumField(); i++ {
		field := sourceVal.Type().Field(i)
		if !field.IsExported() {
			continue
		}

		dst := targetVal.FieldByName(field.Name)
		if !dst.IsValid() || !dst.CanSet() || dst.Type() != field.Type {
			continue
		}

		src := sourceVal.Field(i)
		if isUnset(src) {
			continue
		}
		dst.Set(src)
	}
}

func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	default:
		return v.IsZero()
	}
}
