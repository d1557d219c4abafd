package service

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors. Handlers classify with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrMailDelivery       = errors.New("mail delivery failed")
	ErrNoRecipient        = errors.New("no recipient address")
)

// InputError carries a message fit to show the user. It matches ErrInvalidInput.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalidf(format string, args ...any) error {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

const msgUnrealistic = "Please enter a realistic number"

// requireFinite rejects NaN and infinities, which cannot be stored or encoded as JSON.
func requireFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf(msgUnrealistic)
		}
	}
	return nil
}
