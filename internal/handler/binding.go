package handler

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	playvalidator "github.com/go-playground/validator/v10"

	"worksbill/internal/domain"
)

var registerOnce sync.Once

// RegisterBindings adds the pan, gstin and contractor_class tags to gin's validator.
func RegisterBindings() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playvalidator.Validate)
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
		rules := map[string]playvalidator.Func{
			"pan": func(fl playvalidator.FieldLevel) bool {
				return domain.ValidPAN(fl.Field().String())
			},
			"gstin": func(fl playvalidator.FieldLevel) bool {
				return domain.ValidGSTIN(fl.Field().String())
			},
			"contractor_class": func(fl playvalidator.FieldLevel) bool {
				return domain.ContractorClass(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
			},
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

// bindingMessage turns a binding error into a short client-facing message.
func bindingMessage(err error) string {
	verrs, ok := err.(playvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "pan":
			msgs = append(msgs, "pan must be 10 characters in the form AAAAA9999A")
		case "gstin":
			msgs = append(msgs, "gstin must be a valid 15 character GSTIN")
		case "contractor_class":
			msgs = append(msgs, "class must be one of A, B, C, D, E")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
