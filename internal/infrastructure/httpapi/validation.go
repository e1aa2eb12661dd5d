package httpapi

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// RecommendRequest is the POST /recommend body.
type RecommendRequest struct {
	Preference string `json:"preference" validate:"required,notblank"`
}

// RecommendResponse is the POST /recommend reply. Movies is the
// comma-joined list; clients split it for display.
type RecommendResponse struct {
	Movies string `json:"movies"`
	Source string `json:"source"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}
