package pkg

import "fmt"

// AppError is the error shape handlers render to clients.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body of an error response.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError hides the wrapped cause from the client.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
