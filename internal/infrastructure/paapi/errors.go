package paapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopfront/backend/internal/domain"
)

// RequestError is a non-200 answer from the Product Advertising API. It
// unwraps to one of the domain sentinel errors.
type RequestError struct {
	Operation string
	Status    int
	Code      string
	Message   string
	kind      error
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: status %d: %s: %s", e.kind, e.Operation, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: status %d", e.kind, e.Operation, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.kind
}

var errorCodes = map[string]error{
	"NoResults":                   domain.ErrProductNotFound,
	"ItemNotAccessible":           domain.ErrProductNotFound,
	"InvalidParameterValue":       domain.ErrInvalidRequest,
	"InvalidParameterCombination": domain.ErrInvalidRequest,
	"MissingParameter":            domain.ErrInvalidRequest,
	"UnknownOperation":            domain.ErrInvalidRequest,
	"TooManyRequests":             domain.ErrThrottled,
	"RequestThrottled":            domain.ErrThrottled,
	"UnrecognizedClient":          domain.ErrInvalidCredentials,
	"InvalidSignature":            domain.ErrInvalidCredentials,
	"IncompleteSignature":         domain.ErrInvalidCredentials,
	"MissingAuthenticationToken":  domain.ErrInvalidCredentials,
	"AccessDenied":                domain.ErrInvalidCredentials,
	"AccessDeniedAwsUsers":        domain.ErrInvalidCredentials,
	"InvalidPartnerTag":           domain.ErrAssociateValidation,
	"InvalidAssociate":            domain.ErrAssociateValidation,
}

// newRequestError classifies a failed response by its first error code, falling back to the status
func newRequestError(operation string, status int, body []byte) *RequestError {
	e := &RequestError{Operation: operation, Status: status}

	var payload struct {
		Errors []domain.APIError `json:"Errors"`
		// some gateway errors use lower case keys
		Type    string `json:"__type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Errors) > 0 {
			e.Code = payload.Errors[0].Code
			e.Message = payload.Errors[0].Message
		} else if payload.Type != "" {
			e.Code = payload.Type[strings.LastIndex(payload.Type, "#")+1:]
			e.Message = payload.Message
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}

	if kind, ok := errorCodes[e.Code]; ok {
		e.kind = kind
		return e
	}

	switch status {
	case http.StatusTooManyRequests:
		e.kind = domain.ErrThrottled
	case http.StatusUnauthorized, http.StatusForbidden:
		e.kind = domain.ErrInvalidCredentials
	case http.StatusNotFound:
		e.kind = domain.ErrProductNotFound
	default:
		e.kind = domain.ErrCatalogAPIFailure
	}
	return e
}
