package utils

import (
	"net/url"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookmarktag", ValidateTagRule)
	}
}

func ValidateTagRule(fl validator.FieldLevel) bool {
	return ValidateTag(fl.Field().String())
}

// ValidateTag reports whether a tag matches the stored grammar: ASCII
// [a-z0-9-] only, at least one character. Non-ASCII letters and digits are
// rejected even when Unicode considers them lowercase or numeric.
func ValidateTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, char := range tag {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= '0' && char <= '9':
		case char == '-':
		default:
			return false
		}
	}
	return true
}

// ValidateURL reports whether raw parses as an absolute URL with a host,
// e.g. "https://example.com/page".
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
