package validators

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("travel_date", validateTravelDate)
	validate.RegisterValidation("rating_score", validateRatingScore)
	validate.RegisterValidation("photo_url", validatePhotoURL)
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// First returns the message of the first violated constraint, which is
// what ends up in the 400 response body.
func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// ValidateStruct validates a tagged request struct and returns the
// failures in field order.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "travel_date":
		return "Travel date must be a parseable date"
	case "rating_score":
		return "Score must be an integer between 1 and 5"
	case "photo_url":
		return "Profile photo must be empty or a valid URL"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

// Accepted travel date layouts; the UI sends yyyy-mm-dd, API clients may
// send full RFC 3339 timestamps.
var travelDateLayouts = []string{"2006-01-02", time.RFC3339}

func validateTravelDate(fl validator.FieldLevel) bool {
	_, err := ParseTravelDate(fl.Field().String())
	return err == nil
}

// ParseTravelDate parses a travel date in any accepted layout.
func ParseTravelDate(value string) (time.Time, error) {
	for _, layout := range travelDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", value)
}

func validateRatingScore(fl validator.FieldLevel) bool {
	score := fl.Field().Int()
	return score >= 1 && score <= 5
}

func validatePhotoURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
