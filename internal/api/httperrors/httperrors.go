package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"
)

// Public error type identifiers, mirrored in client documentation.
const (
	TypeGeneric             = "generic"
	TypeMalformedInput      = "malformed_input"
	TypeCatalogUnavailable  = "catalog_unavailable"
	TypeEndpointUnreachable = "endpoint_unreachable"
	TypeUnsupportedMethod   = "unsupported_method"
)

// HTTPError is the public JSON error envelope.
type HTTPError struct {
	Code           int                    `json:"status"`
	Type           *string                `json:"type"`
	Title          *string                `json:"title"`
	Detail         string                 `json:"detail,omitempty"`
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  swag.String(errorType),
		Title: swag.String(title),
	}
}

func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	return &HTTPError{
		Code:   code,
		Type:   swag.String(errorType),
		Title:  swag.String(title),
		Detail: detail,
	}
}

func (e *HTTPError) Error() string {
	errStr := fmt.Sprintf("HTTPError %d (%s): %s", e.Code, swag.StringValue(e.Type), swag.StringValue(e.Title))

	if len(e.Detail) > 0 {
		errStr = fmt.Sprintf("%s - %s", errStr, e.Detail)
	}
	if e.Internal != nil {
		errStr = fmt.Sprintf("%s, %v", errStr, e.Internal)
	}

	return errStr
}

// HTTPValidationErrorDetail names a single invalid request parameter.
type HTTPValidationErrorDetail struct {
	Key   *string `json:"key"`
	In    *string `json:"in"`
	Error *string `json:"error"`
}

// HTTPValidationError is an HTTPError carrying per parameter details.
type HTTPValidationError struct {
	HTTPError
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		HTTPError: HTTPError{
			Code:  code,
			Type:  swag.String(errorType),
			Title: swag.String(title),
		},
		ValidationErrors: validationErrors,
	}
}

func (e *HTTPValidationError) Error() string {
	errStr := e.HTTPError.Error()

	for _, ve := range e.ValidationErrors {
		errStr = fmt.Sprintf("%s - %s (in %s): %s", errStr, swag.StringValue(ve.Key), swag.StringValue(ve.In), swag.StringValue(ve.Error))
	}

	return errStr
}
