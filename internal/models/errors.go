package models

import "fmt"

// ValidationError reports a value rejected at a boundary, such as an enum
// string that matches no known variant. Compile-time typing alone gives no
// runtime guarantee, so every enum is parsed explicitly.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}
