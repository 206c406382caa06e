package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classe les erreurs du moteur. La politique de propagation dépend du
// genre: validation et doublon sont résolus localement (aucun appel réseau),
// le reste remonte typé jusqu'à l'appelant.
type Kind string

const (
	KindNetwork     Kind = "NETWORK_FAILURE"
	KindValidation  Kind = "VALIDATION_FAILURE"
	KindDuplicate   Kind = "DUPLICATE_SUBMISSION"
	KindServer      Kind = "SERVER_REJECTION"
	KindAuthExpired Kind = "AUTH_EXPIRED"
)

// Error est une erreur structurée avec un genre et un message utilisateur.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode retourne le statut HTTP correspondant au genre d'erreur.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicate:
		return http.StatusConflict
	case KindAuthExpired:
		return http.StatusUnauthorized
	case KindServer:
		return http.StatusBadGateway
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func Network(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Cause: cause}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func Server(message string) *Error {
	if message == "" {
		message = "the server rejected the request"
	}
	return &Error{Kind: KindServer, Message: message}
}

func AuthExpired() *Error {
	return &Error{Kind: KindAuthExpired, Message: "session expired, please log in again"}
}

// Is indique si err est une *Error du genre donné.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UserMessage extrait un message présentable; fallback générique sinon.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "something went wrong, please try again"
}
