package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"hrm/inner/common"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout формат дат во входящих запросах
const DateLayout = "2006-01-02"

type Validator struct {
	validate *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

func New() *Validator {
	validate := validator.New()
	// денежные значения сравниваются как числа: gte, lte, gt работают с decimal.Decimal
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = validate.RegisterValidation("commission", validateCommission)
	_ = validate.RegisterValidation("maxbytes", validateMaxBytes)
	return &Validator{validate: validate}
}

// validateCommission комиссия задаётся долей от зарплаты: 0 <= x <= 1
func validateCommission(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() >= 0 && field.Float() <= 1
	default:
		return false
	}
}

// validateMaxBytes ограничивает длину строки в байтах, а не в символах (нужно для bcrypt)
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func decimalValue(field reflect.Value) any {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := value.Float64()
		return f
	}
	return nil
}

func (v *Validator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return v.formatValidationErrors(validateErrs)
		}
		return err
	}
	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors []ValidationError

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.getErrorMessage(err),
		})
	}

	return ValidationErrors{Errors: validationErrors}
}

func (v *Validator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' required", err.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must contain a valid email address", err.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must contain at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must contain a maximum of %s characters", err.Field(), err.Param())
	case "len":
		return fmt.Sprintf("Field '%s' must contain exactly %s characters", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("Field '%s' must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("Field '%s' must be less than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of [%s]", err.Field(), err.Param())
	case "commission":
		return fmt.Sprintf("Field '%s' must be between 0 and 1", err.Field())
	case "maxbytes":
		return fmt.Sprintf("Field '%s' must not exceed %s bytes", err.Field(), err.Param())
	case "datetime":
		return fmt.Sprintf("Field '%s' must be a date in format %s", err.Field(), err.Param())
	case "alpha":
		return fmt.Sprintf("Field '%s' must contain only letters", err.Field())
	case "alphanum":
		return fmt.Sprintf("Field '%s' must contain only letters and numbers", err.Field())
	default:
		return fmt.Sprintf("Field '%s' contains an incorrect value", err.Field())
	}
}

// ToRequestError приводит ошибку валидации к common.RequestValidationError
func ToRequestError(err error, message string) common.RequestValidationError {
	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return common.RequestValidationError{
			Message: message,
			Data:    validationErr.Errors,
		}
	}
	return common.RequestValidationError{Message: err.Error()}
}
