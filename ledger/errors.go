package ledger

import "errors"

// Messages returned to clients for rejected operations.
const (
	MsgPatientRequired        = "Patient information required"
	MsgInvalidDateTime        = "Invalid date or time format"
	MsgPastDate               = "Cannot set appointment for past date"
	MsgTerminatedImmutable    = "Cannot modify terminated appointment"
	MsgFutureTerminated       = "Cannot mark future appointment as terminated"
	MsgInvalidAppointmentStat = "Invalid appointment status"
	MsgAppointmentRequired    = "Patient must have an existing appointment"
	MsgPaidImmutable          = "Cannot modify paid invoice"
	MsgPaidNeedsTerminated    = "Cannot mark as paid without terminated appointment"
	MsgInvalidInvoiceStatus   = "Invalid invoice status"
	MsgInvalidAmount          = "Amount must be greater than zero"
	MsgInvalidPct             = "Reimbursement percentage must be between 0 and 100"
)

// ValidationError is a rejected input or state transition. Handlers answer it with 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
