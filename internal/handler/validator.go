package handler

import (
	"github.com/go-playground/validator/v10"
)

// structValidator plugs go-playground/validator into Fiber's body
// binder, so c.Bind().Body() validates `validate` tags.
type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns the validator used in fiber.Config.
func NewStructValidator() *structValidator {
	return &structValidator{validate: validator.New()}
}

func (v *structValidator) Validate(out any) error {
	return v.validate.Struct(out)
}
