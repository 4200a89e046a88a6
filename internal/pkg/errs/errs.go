package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every struct error in
// this package unwraps to exactly one of these.
var (
	// ErrValueIsRequired indicates a required value was not provided.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a value was provided but is not acceptable.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value lies outside its permitted range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound indicates a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidStateTransition indicates a lifecycle event is not legal from
	// the current state of an entity.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrConflict indicates an operation lost to a concurrent change, such as
	// accepting a match on a load that was already matched.
	ErrConflict = errors.New("conflict")

	// ErrCarrierIneligible indicates a carrier failed one of the eligibility
	// rules for a load.
	ErrCarrierIneligible = errors.New("carrier is not eligible")
)

// sanitize renders a value for inclusion in an error message, collapsing
// line breaks so messages stay single-line in logs.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func withCause(message string, cause error) string {
	if cause == nil {
		return message
	}
	return fmt.Sprintf("%s (cause: %s)", message, cause)
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but unacceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and its permitted bounds.
func NewValueIsOutOfRangeError(paramName string, value, min, max any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, min, max any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	message := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	return withCause(message, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError reports a lookup that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named lookup
// parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
	}
	return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateTransitionError reports a lifecycle event applied in a state
// that does not permit it. Entity names the state machine (load, match,
// shipment), From the current state, and Event the attempted transition.
type InvalidStateTransitionError struct {
	Entity string
	From   string
	Event  string
	Cause  error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError naming
// the entity, its current state, and the attempted event.
func NewInvalidStateTransitionError(entity, from, event string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, Event: event}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(entity, from, event string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, Event: event, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	message := fmt.Sprintf("%s: %s cannot apply %s in state %s",
		ErrInvalidStateTransition, e.Entity, e.Event, e.From)
	return withCause(message, e.Cause)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ConflictError reports an operation that lost to a concurrent change on the
// same resource.
type ConflictError struct {
	Resource string
	ID       any
	Details  string
	Cause    error
}

// NewConflictError creates a ConflictError for the named resource and identifier.
func NewConflictError(resource string, id any, details string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Details: details}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(resource string, id any, details string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Details: details, Cause: cause}
}

func (e *ConflictError) Error() string {
	message := fmt.Sprintf("%s: %s %s: %s", ErrConflict, e.Resource, sanitize(e.ID), e.Details)
	return withCause(message, e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IneligibleCarrierError reports the first eligibility rule a carrier failed
// for a load.
type IneligibleCarrierError struct {
	CarrierID any
	Rule      string
	Cause     error
}

// NewIneligibleCarrierError creates an IneligibleCarrierError naming the failed rule.
func NewIneligibleCarrierError(carrierID any, rule string) *IneligibleCarrierError {
	return &IneligibleCarrierError{CarrierID: carrierID, Rule: rule}
}

// NewIneligibleCarrierErrorWithCause creates an IneligibleCarrierError wrapping
// an underlying cause.
func NewIneligibleCarrierErrorWithCause(carrierID any, rule string, cause error) *IneligibleCarrierError {
	return &IneligibleCarrierError{CarrierID: carrierID, Rule: rule, Cause: cause}
}

func (e *IneligibleCarrierError) Error() string {
	message := fmt.Sprintf("%s: %s failed rule %s", ErrCarrierIneligible, sanitize(e.CarrierID), e.Rule)
	return withCause(message, e.Cause)
}

func (e *IneligibleCarrierError) Unwrap() error {
	return ErrCarrierIneligible
}
