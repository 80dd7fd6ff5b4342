package exts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

var validation = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" || len(name) == 0 {
			return field.Name
		}
		return name
	})
	return v
}

// BindForm parses a submitted html form. Validation problems come back as
// field messages so the form can be shown again, any other failure is an
// error.
func BindForm(c *fiber.Ctx, out any) (map[string]string, error) {
	if err := c.BodyParser(out); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err := validation.Struct(out)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	return lo.Associate(verrs, func(item validator.FieldError) (string, string) {
		return item.Field(), describeFieldError(item)
	}), nil
}

func describeFieldError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", err.Param())
	case "datetime":
		return "Must be a date like " + err.Param() + "."
	default:
		return "Invalid value."
	}
}
