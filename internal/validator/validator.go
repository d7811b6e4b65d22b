package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers JSON field names, English translations and the custom
// course tags on Gin's binding engine. Call once during application startup.
func Setup() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return
	}
	if err := Register(v); err != nil {
		panic(err)
	}
}

// Register configures v. Exposed so tests can build a standalone validator.
func Register(v *govalidator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	if err := v.RegisterValidation("academic_year", validateAcademicYear); err != nil {
		return err
	}
	return v.RegisterTranslation("academic_year", trans,
		func(ut ut.Translator) error {
			return ut.Add("academic_year", "{0} must look like 2024/2025", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T("academic_year", fe.Field())
			return msg
		},
	)
}

// validateAcademicYear accepts "YYYY/YYYY" where the second year follows the first.
func validateAcademicYear(fl govalidator.FieldLevel) bool {
	return IsAcademicYear(fl.Field().String())
}

// IsAcademicYear reports whether s is an academic year such as "2024/2025".
func IsAcademicYear(s string) bool {
	first, second, ok := strings.Cut(s, "/")
	if !ok || len(first) != 4 || len(second) != 4 {
		return false
	}
	a, err := strconv.Atoi(first)
	if err != nil || a < 1900 {
		return false
	}
	b, err := strconv.Atoi(second)
	if err != nil {
		return false
	}
	return b == a+1
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name to human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fe.Error()
			}
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
