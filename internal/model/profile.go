package model

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserProfile is the personal/career record submitted through the form.
// Objective and Projects are optional; every other field must be non-blank.
type UserProfile struct {
	Name       string `json:"name" form:"name" yaml:"name" validate:"notblank"`
	Email      string `json:"email" form:"email" yaml:"email" validate:"notblank"`
	Phone      string `json:"phone" form:"phone" yaml:"phone" validate:"notblank"`
	Objective  string `json:"objective" form:"objective" yaml:"objective"`
	Education  string `json:"education" form:"education" yaml:"education" validate:"notblank"`
	Skills     string `json:"skills" form:"skills" yaml:"skills" validate:"notblank"`
	Experience string `json:"experience" form:"experience" yaml:"experience" validate:"notblank"`
	Projects   string `json:"projects" form:"projects" yaml:"projects"`
}

// ValidationError lists the required fields left empty, in declaration order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Please fill in the following required fields: " + strings.Join(e.Fields, ", ")
}

//nolint:gochecknoglobals // validator caches struct metadata
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks that every required field is non-blank.
// It returns a *ValidationError naming the empty fields, or nil.
func (p UserProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
