package httperr

import "errors"

// ValidationError é uma falha de validação local: barra a operação antes de
// qualquer chamada de rede e nunca passa pelo normalizador do gateway.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
