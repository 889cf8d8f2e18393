package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("regioncode", regionCodeValidator)
		if err != nil {
			log.Fatal("register regioncode validator failed")
		}
	}
}

// INSEE region codes are one to three digits or uppercase letters ("84",
// "01", "COM").
var regionCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	pattern := `^[0-9A-Z]{1,3}$`
	matched, err := regexp.MatchString(pattern, code)
	if err != nil {
		return false
	}
	return matched
}
