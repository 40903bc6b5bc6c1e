package blogsdk

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const requiredReason = "required"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct returns a map of field names to error messages, or nil if
// all fields are valid.
func validateStruct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}

	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = describe(fe)
	}
	return errs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return requiredReason
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "too short (min " + fe.Param() + ")"
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func merge(errs map[string]string, field, reason string) map[string]string {
	if errs == nil {
		errs = make(map[string]string)
	}
	errs[field] = reason
	return errs
}

func (r RegisterRequest) Validate() map[string]string {
	errs := validateStruct(r)
	if r.Name != "" && strings.TrimSpace(r.Name) == "" {
		errs = merge(errs, "name", requiredReason)
	}
	return errs
}

func (r LoginRequest) Validate() map[string]string         { return validateStruct(r) }
func (r PasswordResetRequest) Validate() map[string]string { return validateStruct(r) }
func (r ResetPasswordRequest) Validate() map[string]string { return validateStruct(r) }
func (r GoogleLoginRequest) Validate() map[string]string   { return validateStruct(r) }
func (r SetAdminRequest) Validate() map[string]string      { return nil }

func (r PostCreateRequest) Validate() map[string]string {
	errs := validateStruct(r)
	if r.Title != "" && strings.TrimSpace(r.Title) == "" {
		errs = merge(errs, "title", requiredReason)
	}
	return errs
}

func (r PostUpdateRequest) Validate() map[string]string {
	errs := validateStruct(r)
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs = merge(errs, "title", requiredReason)
	}
	if id := r.CategoryID.Ptr(); id != nil && *id <= 0 {
		errs = merge(errs, "category_id", "must be greater than 0")
	}
	if url := r.ImageURL.Ptr(); url != nil && len(*url) > 2048 {
		errs = merge(errs, "image_url", "too long (max 2048)")
	}
	return errs
}

func (r CategoryRequest) Validate() map[string]string {
	errs := validateStruct(r)
	if r.Name != "" && strings.TrimSpace(r.Name) == "" {
		errs = merge(errs, "name", requiredReason)
	}
	return errs
}
