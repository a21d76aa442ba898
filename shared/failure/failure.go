package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure raised by the compatibility layer. Every kind
// except KindNullZone originates in the underlying time facility and is
// surfaced unchanged; the null-zone guard is the one check this layer adds.
type Kind int

const (
	KindUnknown Kind = iota
	KindZoneNotFound
	KindNullZone
	KindAmbiguousTime
	KindNonexistentTime
	KindInvalid
)

// Failure is a wrapper for error messages and kinds in the layer's taxonomy.
type Failure struct {
	Kind    Kind
	Message string
	Cause   error
}

var NullZonePointer = &Failure{Kind: KindNullZone, Message: "null time zone pointer"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying facility error, when one exists.
func (e *Failure) Unwrap() error {
	return e.Cause
}

// ZoneNotFound returns a new Failure for a zone name absent from the database.
func ZoneNotFound(name string, cause error) error {
	return &Failure{
		Kind:    KindZoneNotFound,
		Message: fmt.Sprintf("time zone %q not found in database", name),
		Cause:   cause,
	}
}

// NullZone returns a new Failure for a nil zone reference.
func NullZone(context string) error {
	return &Failure{
		Kind:    KindNullZone,
		Message: fmt.Sprintf("%s: null time zone pointer", context),
	}
}

// AmbiguousTime returns a new Failure for a local time that maps to two instants.
func AmbiguousTime(wall, zone string) error {
	return &Failure{
		Kind:    KindAmbiguousTime,
		Message: fmt.Sprintf("local time %s is ambiguous in zone %s", wall, zone),
	}
}

// NonexistentTime returns a new Failure for a local time inside a forward gap.
func NonexistentTime(wall, zone string) error {
	return &Failure{
		Kind:    KindNonexistentTime,
		Message: fmt.Sprintf("local time %s does not exist in zone %s", wall, zone),
	}
}

// Invalid returns a new Failure for a malformed argument.
func Invalid(msg string) error {
	return &Failure{
		Kind:    KindInvalid,
		Message: msg,
	}
}

// GetKind returns the kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsZoneNotFound reports whether err is a zone-lookup miss or a null zone.
func IsZoneNotFound(err error) bool {
	k := GetKind(err)
	return k == KindZoneNotFound || k == KindNullZone
}

// IsAmbiguous reports whether err is an ambiguous-local-time condition.
func IsAmbiguous(err error) bool {
	return GetKind(err) == KindAmbiguousTime
}

// IsNonexistent reports whether err is a nonexistent-local-time condition.
func IsNonexistent(err error) bool {
	return GetKind(err) == KindNonexistentTime
}
