package dto

import (
	"reflect"
	"strings"

	"stars-converter/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators adds the converter's custom tags to v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("amount_text", validateAmountText)
}

// validateCurrency accepts stars, ton and usdt in any case.
func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrency(fl.Field().String())
	return ok
}

// validateAmountText accepts digits with at most one decimal point. The
// empty string is a valid (empty) amount.
func validateAmountText(fl validator.FieldLevel) bool {
	return domain.AmountText(fl.Field().String()).Valid()
}

// TrimStruct trims surrounding whitespace from every exported string
// field of a struct pointer, descending into nested structs. Fields tagged
// `trim:"-"` are left as sent.
func TrimStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rt.Field(i).Tag.Get("trim") == "-" {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Struct:
			trimFields(f)
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			switch elem.Kind() {
			case reflect.String:
				elem.SetString(strings.TrimSpace(elem.String()))
			case reflect.Struct:
				trimFields(elem)
			}
		}
	}
}
