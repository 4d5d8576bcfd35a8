package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/common"
	"github.com/go-playground/validator/v10"
)

// Validator checks the required fields of records. Field names in reports
// come from the label struct tag.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !common.Blank(fl.Field().String())
	})
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		return models.IsSeason(fl.Field().String())
	})
	return &Validator{v: v}
}

// Missing returns the labels of the fields of record that fail validation.
func (val *Validator) Missing(record any) []string {
	err := val.v.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

// gate opens a notice and returns false when anything is missing.
type gate struct {
	val    *Validator
	dialog *dialog.Dialog
}

func (g gate) check(msg string, missing []string) bool {
	if len(missing) == 0 {
		return true
	}
	g.dialog.OpenWith(dialog.Settings{
		Body:        msg + "\nMissing: " + strings.Join(missing, ", "),
		SecondClass: dialog.ClassHidden,
	})
	return false
}
