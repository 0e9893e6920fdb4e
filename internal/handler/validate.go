package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-job-tracker/pkg/apierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs struct-tag validation and converts the first
// violation into a client-facing BAD_REQUEST error.
func validateRequest(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		field := strings.ToLower(first.Field())
		return apierror.New("BAD_REQUEST",
			fmt.Sprintf("%s failed validation on the %s rule", field, first.Tag()),
			field, http.StatusBadRequest)
	}

	return apierror.New("BAD_REQUEST", "invalid request body", "", http.StatusBadRequest)
}
