package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica un error según la taxonomía de la API
type Kind string

const (
	KindValidation    Kind = "validation_error"
	KindAuthorization Kind = "authorization_error"
	KindNotFound      Kind = "not_found"
	KindStorage       Kind = "storage_error"
	KindUnknown       Kind = "unknown_error"
)

// Error es un error con clasificación estable para el cliente.
// Message es apto para exponerse; Err es la causa interna y nunca
// viaja en la respuesta.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation construye un error de entrada inválida (400)
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Authorization construye un error de rol o propiedad (403)
func Authorization(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

// NotFound construye un error de recurso inexistente (404)
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage envuelve una falla del almacenamiento primario (500)
func Storage(err error, message string) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extrae la clasificación de un error; cualquier error ajeno
// a la taxonomía se reporta como desconocido
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message devuelve el mensaje expuesto al cliente
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// HTTPStatus mapea la clasificación al status HTTP correspondiente
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
