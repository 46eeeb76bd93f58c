package domain

import (
	"fmt"
	"regexp"
)

// PhonePattern matches local mobile numbers: 11 digits, starting 01,
// third digit 3-9.
var PhonePattern = regexp.MustCompile(`^01[3-9][0-9]{8}$`)

// ValidationError reports input rejected before it reaches the network.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// PersistenceError wraps a durable-storage read or write failure. Non-fatal:
// the session degrades to in-memory operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence %s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NetworkError wraps a transport-level failure (no usable response).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// BackendError reports a response the backend itself flagged as failed,
// either via HTTP status or a success:false envelope.
type BackendError struct {
	Op     string
	Status int
	Msg    string
}

func (e *BackendError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("backend %s: %s (status %d)", e.Op, e.Msg, e.Status)
	}
	return fmt.Sprintf("backend %s: status %d", e.Op, e.Status)
}

// Validate checks delivery details client-side, before any network call.
func (d DeliveryDetails) Validate() error {
	if d.DeliveryAddress == "" {
		return &ValidationError{Field: "deliveryAddress", Msg: "delivery address is required"}
	}
	if !PhonePattern.MatchString(d.Phone) {
		return &ValidationError{Field: "phone", Msg: "invalid phone number"}
	}
	return nil
}
