package tracker

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"jobtrack/pkg/api"
)

// recordValidate is the validator instance for job records.
// Initialized in init() with the custom contact-field rules.
var recordValidate *validator.Validate

var (
	// Exactly 10 digits, starting with 0.
	phonePattern = regexp.MustCompile(`^0\d{9}$`)
	// Local part of at least 3 characters, an @, and a dotted domain.
	emailPattern = regexp.MustCompile(`^[^@\s]{3,}@[^@\s]+\.[^@\s]+$`)
)

func init() {
	recordValidate = validator.New()
	_ = recordValidate.RegisterValidation("contactphone", validateContactPhone)
	_ = recordValidate.RegisterValidation("contactemail", validateContactEmail)
	_ = recordValidate.RegisterValidation("recordstatus", validateRecordStatus)
}

func validateContactPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	return api.Status(fl.Field().String()).Valid()
}

// ValidateRecord checks a draft against the record rules and returns a
// field→message map suitable for inline form display, or nil when the
// draft is valid. Contact fields are optional and only checked when set.
func ValidateRecord(draft api.JobRecord) ValidationError {
	err := recordValidate.Struct(draft)
	if err == nil {
		return nil
	}

	out := ValidationError{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out["record"] = err.Error()
		return out
	}

	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Company":
			out["company"] = "Company name is required"
		case "Position":
			out["position"] = "Position is required"
		case "PhoneNumber":
			out["phone_number"] = "Phone number must be 10 digits starting with 0"
		case "Email":
			out["email"] = "Enter a valid email address"
		case "Status":
			out["status"] = "Status must be Pending, Approved or Rejected"
		}
	}
	return out
}
