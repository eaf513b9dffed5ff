package config

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewValidate() *Validator {
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	// report the JSON field name so messages match the event payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	en_translations.RegisterDefaultTranslations(validate, trans)

	return &Validator{
		validate: validate,
		trans:    trans,
	}
}

func (v *Validator) Struct(obj any) error {
	if err := v.validate.Struct(obj); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		return NewValidationError(strings.Join(v.getErrorMessages(validationErrors), ","))
	}
	return nil
}

func (v *Validator) getErrorMessages(errs validator.ValidationErrors) []string {
	var messages []string
	for _, m := range errs.Translate(v.trans) {
		messages = append(messages, m)
	}
	// Translate returns a map; keep the output stable.
	sort.Strings(messages)
	return messages
}

type ValidationError struct {
	msg string
}

func (v *ValidationError) Error() string {
	return v.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
