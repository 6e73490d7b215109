package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// processStructFields overrides every field tagged `env:"NAME"` with the value
// of NAME when that variable is set. Nested structs are walked recursively.
func processStructFields(s interface{}) error {
	val := reflect.Indirect(reflect.ValueOf(s))
	if val.Kind() != reflect.Struct {
		return nil
	}
	return applyEnv(val)
}

func applyEnv(val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := val.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field); err != nil {
				return err
			}
			continue
		}

		name, ok := sf.Tag.Lookup("env")
		if !ok || name == "" {
			continue
		}
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}
		if err := setFieldFromEnv(field, raw); err != nil {
			return fmt.Errorf("env %s (%s): %w", name, sf.Name, err)
		}
	}
	return nil
}

// setFieldFromEnv parses value according to the field's kind and stores it
func setFieldFromEnv(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch kind := field.Kind(); {
	case field.Type() == durationType:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		field.SetInt(int64(d))
	case kind == reflect.String:
		field.SetString(value)
	case kind >= reflect.Int && kind <= reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, err)
		}
		field.SetInt(n)
	case kind == reflect.Float32 || kind == reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", value, err)
		}
		field.SetFloat(f)
	case kind == reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", kind)
	}
	return nil
}
