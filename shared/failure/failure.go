package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the HTTP layer may show to the caller verbatim, with the status code to use.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// fromError keeps a nil err nil so call sites can wrap unconditionally.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return newFailure(code, err.Error())
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

// Unprocessable reports a request that cannot be served because of missing or broken setup,
// such as a property without a valid timezone.
func Unprocessable(err error) error {
	return fromError(http.StatusUnprocessableEntity, err)
}

// NotFound takes the caller-facing message, usually "<entity> not found".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// GetCode returns the status of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	code, _ := Describe(err)

	return code
}

// Describe returns the status and the caller-facing message for err. Anything that is not a
// Failure is an internal error and its text is withheld.
func Describe(err error) (int, string) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code, fail.Message
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
