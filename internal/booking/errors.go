package booking

import (
	"errors"
	"fmt"

	"ev-booking-backend/internal/parse"
)

// Errors surfaced to API clients. Messages are the user-facing
// Portuguese strings returned in the JSON error body.
var (
	ErrUserNotFound        = errors.New("Usuário não encontrado")
	ErrLocationNotFound    = errors.New("Local não encontrado")
	ErrNoChargerAtLocation = errors.New("Nenhum carregador disponível neste local")
	ErrAppointmentNotFound = errors.New("Agendamento não encontrado")
	ErrInvalidTimeRange    = errors.New("O horário de término deve ser maior que o de início")
)

// MissingFieldError reports a required request field that was absent or
// empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Campo obrigatório '%s' não informado", e.Field)
}

// IsNotFound reports whether err is one of the entity-absence errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrLocationNotFound) ||
		errors.Is(err, ErrNoChargerAtLocation) ||
		errors.Is(err, ErrAppointmentNotFound)
}

// IsInvalidArgument reports whether err describes rejected input rather
// than a missing entity or an internal failure.
func IsInvalidArgument(err error) bool {
	var missing *MissingFieldError
	return errors.As(err, &missing) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, parse.ErrBadTimestamp)
}
