// Package envstruct populates configuration structs from environment
// variables declared with struct tags.
package envstruct

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEnvNotSet    = errors.New("environment variable not set")
	ErrInvalidValue = errors.New("v must be a pointer to a struct")
)

// Populate fills the string fields of the struct pointed to by v from the
// environment.
//
// lookupEnv has the same signature as [os.LookupEnv]. Fields opt in with an
// `env:"NAME"` tag; when the variable is unset, an `envDefault:"value"` tag
// supplies the fallback, otherwise ErrEnvNotSet is reported for the field.
// All field errors are joined so a misconfigured deployment surfaces every
// missing variable at once.
func Populate(v any, lookupEnv func(string) (string, bool)) error {
	ptrRef := reflect.ValueOf(v)
	if ptrRef.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: not pointer: %v", ErrInvalidValue, v)
	}
	ref := ptrRef.Elem()
	if ref.Kind() != reflect.Struct {
		return fmt.Errorf("%w: not struct: %v", ErrInvalidValue, v)
	}

	refType := ref.Type()
	var errorList []error

	for i := range refType.NumField() {
		refField := ref.Field(i)
		refTypeField := refType.Field(i)
		tag := refTypeField.Tag

		envVarName, ok := tag.Lookup("env")
		if !ok {
			continue
		}
		if !refField.CanSet() {
			errorList = append(errorList, fmt.Errorf("%w: cannot set field: %s",
				ErrInvalidValue, refTypeField.Name))
			continue
		}
		if refField.Kind() != reflect.String {
			errorList = append(errorList, fmt.Errorf("%w: only strings are supported - field: %s, type: %s, env: %s",
				ErrInvalidValue, refTypeField.Name, refField.Kind().String(), envVarName))
			continue
		}

		val, err := lookup(envVarName, tag, lookupEnv)
		if err != nil {
			errorList = append(errorList, err)
			continue
		}
		refField.SetString(val)
	}

	if len(errorList) != 0 {
		return errors.Join(errorList...)
	}
	return nil
}

func lookup(envVarName string, tag reflect.StructTag, lookupEnv func(string) (string, bool)) (string, error) {
	if val, ok := lookupEnv(envVarName); ok {
		return val, nil
	}
	if val, ok := tag.Lookup("envDefault"); ok {
		return val, nil
	}
	return "", fmt.Errorf("%w: environment variable not set: %s", ErrEnvNotSet, envVarName)
}
