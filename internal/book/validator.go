package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs validator tags over s and maps failures to
// client-facing messages. Errors come back in struct field order, so the
// required title/author/listType checks fire before the rating range check.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(param), ", "))
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errs = append(errs, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errs
}

// validateBookRequest layers the rating range check on top of the tag
// validation. The check is explicit because validator's omitempty reads a
// present rating of 0 as "empty" and would skip the range rule, and a
// present 0 must be rejected, not treated as absent.
func validateBookRequest(req bookRequest) []ValidationError {
	errs := ValidateStruct(req)
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		errs = append(errs, ValidationError{
			Field:   "rating",
			Message: "Rating must be an integer between 1 and 5",
		})
	}
	return errs
}
