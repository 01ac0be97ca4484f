package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/JabirC/Closet/core"
)

var registerOnce sync.Once

// RegisterValidators adds the wardrobe rules to gin's binding engine:
// "category" (one of core.Categories) and "isodate" (YYYY-MM-DD).
// Field names in errors use the json tag. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return core.IsCategory(fl.Field().String())
		}); err != nil {
			return
		}
		err = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, perr := core.ParseDate(fl.Field().String())
			return perr == nil
		})
	})
	return err
}

// ValidationMessage flattens binding errors into one readable line,
// e.g. "category must satisfy category; name is required".
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s must be %s %s", fe.Field(), map[string]string{"min": "at least", "max": "at most"}[fe.Tag()], fe.Param()))
		case "category":
			parts = append(parts, fe.Field()+" must be one of "+strings.Join(core.Categories, ", "))
		case "isodate":
			parts = append(parts, fe.Field()+" must be YYYY-MM-DD")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}

func asValidationErrors(err error, out *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if ok {
		*out = v
	}
	return ok
}
