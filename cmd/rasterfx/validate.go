package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/rasterfx"
)

// validate checks command flag structs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// odd accepts odd integers.
	mustRegister(v, "odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 != 0
	})

	// color accepts anything rasterfx.ParseColor does.
	mustRegister(v, "color", func(fl validator.FieldLevel) bool {
		_, err := rasterfx.ParseColor(fl.Field().String())
		return err == nil
	})

	return v
}

// mustRegister registers a custom tag and panics if the tag is rejected.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("rasterfx: register validation %q: %v", tag, err))
	}
}
