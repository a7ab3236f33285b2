package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDraft checks the presence constraints on a draft. The catalog
// service enforces everything beyond presence and URL shape.
func ValidateDraft(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, strings.ToLower(fe.Field())+" is required")
		case "url":
			fields = append(fields, strings.ToLower(fe.Field())+" must be a URL")
		case "oneof":
			fields = append(fields, strings.ToLower(fe.Field())+" must be In Stock or Out of Stock")
		default:
			fields = append(fields, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return fmt.Errorf("%s", strings.Join(fields, "; "))
}
