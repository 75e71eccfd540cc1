package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxIDLength   = 64
	MaxNameLength = 256

	// Node ids come from external membership systems; keep them to a
	// conservative identifier alphabet.
	idPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)
)

func init() {
	validate = validator.New()
}

// NodeInput represents one node supplied by a collaborator system.
type NodeInput struct {
	ID        string  `json:"id" validate:"required,max=64"`
	Name      string  `json:"name" validate:"omitempty,max=256"`
	TimeSpent float64 `json:"timeSpent" validate:"gte=0"`
}

// EdgeInput represents one weighted relationship between two nodes.
type EdgeInput struct {
	Source string  `json:"source" validate:"required,max=64"`
	Target string  `json:"target" validate:"required,max=64"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// ValidateNodeInput validates a single node record.
func ValidateNodeInput(input *NodeInput) error {
	if input == nil {
		return errors.New("node input cannot be nil")
	}

	if err := validate.Struct(input); err != nil {
		return formatValidationError(err)
	}

	if !idPattern.MatchString(input.ID) {
		return fmt.Errorf("ID: %q contains invalid characters (only alphanumeric, underscore, dot, colon and dash allowed)", input.ID)
	}

	return nil
}

// ValidateEdgeInput validates a single edge record.
func ValidateEdgeInput(input *EdgeInput) error {
	if input == nil {
		return errors.New("edge input cannot be nil")
	}

	if err := validate.Struct(input); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			switch fieldErr.Tag() {
			case "required":
				return fmt.Errorf("%s: required field is missing", fieldErr.Field())
			case "max":
				return fmt.Errorf("%s: exceeds maximum of %s", fieldErr.Field(), fieldErr.Param())
			case "gte":
				return fmt.Errorf("%s: must be at least %s", fieldErr.Field(), fieldErr.Param())
			case "gt":
				return fmt.Errorf("%s: must be greater than %s", fieldErr.Field(), fieldErr.Param())
			default:
				return fmt.Errorf("%s: failed %s validation", fieldErr.Field(), fieldErr.Tag())
			}
		}
	}
	return err
}
