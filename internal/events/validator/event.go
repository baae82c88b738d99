package validator

import (
	"errors"
	"fmt"
	"strings"

	"eventbook/pkg/logger"
	"eventbook/pkg/model"
	"eventbook/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	v := validator.New()

	if err := v.RegisterValidation("event_slug", validateSlug); err != nil {
		log.Fatal("Failed to register 'event_slug' validator", "error", err)
	}
	if err := v.RegisterValidation("event_date", validateDate); err != nil {
		log.Fatal("Failed to register 'event_date' validator", "error", err)
	}
	if err := v.RegisterValidation("event_time", validateTime); err != nil {
		log.Fatal("Failed to register 'event_time' validator", "error", err)
	}

	log.Info("Event validator initialized successfully")

	return &EventValidator{
		validate: v,
		logger:   log,
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	return sanitizer.IsSlug(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := sanitizer.NormalizeDate(fl.Field().String())
	return err == nil
}

func validateTime(fl validator.FieldLevel) bool {
	_, err := sanitizer.NormalizeTime(fl.Field().String())
	return err == nil
}

func (v *EventValidator) Validate(event *model.Event) error {
	if err := v.validate.Struct(event); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *EventValidator) ValidateUpdate(update *model.EventUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *EventValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s item(s)", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "event_slug":
			message = fmt.Sprintf("%s must contain only lowercase letters, digits and single hyphens", err.Field())
		case "event_date":
			message = fmt.Sprintf("%s must be a valid calendar date in YYYY-MM-DD format", err.Field())
		case "event_time":
			message = fmt.Sprintf("%s must be a valid 24-hour time in HH:MM format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
