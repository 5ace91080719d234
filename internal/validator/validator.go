package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skillhorizon/marketplace-service/internal/models"
)

// Validator wraps go-playground/validator with the domain rules used by
// request DTOs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Domain tags. Registration only fails for empty tag names.
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("lifecycle_status", validateLifecycleStatus)
	_ = v.RegisterValidation("class_price", validateClassPrice)

	return &Validator{validate: v}
}

// ValidateStruct validates a DTO and returns a flattened, client-safe
// error or nil.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "user_role":
		return fmt.Sprintf("%s must be one of Student, Teacher, Admin", fe.Field())
	case "lifecycle_status":
		return fmt.Sprintf("%s must be one of Pending, Accepted, Rejected", fe.Field())
	case "class_price":
		return fmt.Sprintf("%s must be a positive amount", fe.Field())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).IsValid()
}

func validateLifecycleStatus(fl validator.FieldLevel) bool {
	return models.RequestStatus(fl.Field().String()).IsValid()
}

func validateClassPrice(fl validator.FieldLevel) bool {
	return fl.Field().Float() > 0
}
