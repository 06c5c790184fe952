// Package diag implements the three error channels member operations
// report through: non-fatal notices/warnings, fatal errors that unwind
// the caller, and the typed InvalidSetM exception used when a caller
// opts out of auto-vivification (spec.md §7). Modeled on the teacher's
// types.ErrorCode — a small enum with String()/Message() — but cataloging
// HHVM's diagnostic strings instead of MOO's E_* codes, since that's this
// domain's error surface.
package diag

import "fmt"

// Code enumerates the fixed catalog of diagnostics spec.md §6 names.
// Unlike types.ErrorCode these aren't raised as MOO error values; Code is
// carried on Notice/Warning records and on Fatal, purely for identifying
// which case fired (tests match on Code, not on formatted text).
type Code int

const (
	CodeNone Code = iota
	CodeUndefinedIndex
	CodeUndefinedOffset
	CodeUndefinedProperty
	CodeCannotUseScalarAsArray
	CodeCannotAccessPropertyOnNonObject
	CodeCreatingDefaultObjectFromEmptyValue
	CodeIllegalOffsetType
	CodeIllegalStringOffset
	CodeOutOfBounds
	CodeAppendNotSupportedForStrings
	CodeCannotIncDecOverloadedOrStringOffset
	CodeCannotUnsetStringOffsets
	CodeStringOffsetCastOccurred
	CodeAttemptToAssignPropertyOfNonObject
	CodeAttemptToIncDecPropertyOfNonObject
	CodeCollectionElementsByRef
	CodeOperatorNotSupportedForStrings
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeUndefinedIndex:
		return "undefined_index"
	case CodeUndefinedOffset:
		return "undefined_offset"
	case CodeUndefinedProperty:
		return "undefined_property"
	case CodeCannotUseScalarAsArray:
		return "cannot_use_scalar_as_array"
	case CodeCannotAccessPropertyOnNonObject:
		return "cannot_access_property_on_non_object"
	case CodeCreatingDefaultObjectFromEmptyValue:
		return "creating_default_object_from_empty_value"
	case CodeIllegalOffsetType:
		return "illegal_offset_type"
	case CodeIllegalStringOffset:
		return "illegal_string_offset"
	case CodeOutOfBounds:
		return "out_of_bounds"
	case CodeAppendNotSupportedForStrings:
		return "append_not_supported_for_strings"
	case CodeCannotIncDecOverloadedOrStringOffset:
		return "cannot_incdec_overloaded_or_string_offset"
	case CodeCannotUnsetStringOffsets:
		return "cannot_unset_string_offsets"
	case CodeStringOffsetCastOccurred:
		return "string_offset_cast_occurred"
	case CodeAttemptToAssignPropertyOfNonObject:
		return "attempt_to_assign_property_of_non_object"
	case CodeAttemptToIncDecPropertyOfNonObject:
		return "attempt_to_incdec_property_of_non_object"
	case CodeCollectionElementsByRef:
		return "collection_elements_by_ref"
	case CodeOperatorNotSupportedForStrings:
		return "operator_not_supported_for_strings"
	default:
		return "unknown"
	}
}

// Message returns the exact diagnostic text the original emits for c,
// with fmt verbs for the cases that interpolate a key/offset.
func (c Code) Message() string {
	switch c {
	case CodeNone:
		return ""
	case CodeUndefinedIndex:
		return "Undefined index: %v"
	case CodeUndefinedOffset:
		return "Undefined offset: %v"
	case CodeUndefinedProperty:
		return "Undefined property: %v"
	case CodeCannotUseScalarAsArray:
		return "Cannot use a scalar value as an array"
	case CodeCannotAccessPropertyOnNonObject:
		return "Attempt to access property on non-object"
	case CodeCreatingDefaultObjectFromEmptyValue:
		return "Creating default object from empty value"
	case CodeIllegalOffsetType:
		return "Illegal offset type"
	case CodeIllegalStringOffset:
		return "Illegal string offset: %v"
	case CodeOutOfBounds:
		return "Out of bounds"
	case CodeAppendNotSupportedForStrings:
		return "[] operator not supported for strings"
	case CodeCannotIncDecOverloadedOrStringOffset:
		return "Cannot increment/decrement overloaded objects nor string offsets"
	case CodeCannotUnsetStringOffsets:
		return "Cannot unset string offsets"
	case CodeStringOffsetCastOccurred:
		return "String offset cast occurred"
	case CodeAttemptToAssignPropertyOfNonObject:
		return "Attempt to assign property of non-object"
	case CodeAttemptToIncDecPropertyOfNonObject:
		return "Attempt to increment/decrement property of non-object"
	case CodeCollectionElementsByRef:
		return "Collection elements cannot be taken by reference"
	case CodeOperatorNotSupportedForStrings:
		return "Operator not supported for strings"
	default:
		return "Unknown diagnostic"
	}
}

// Severity distinguishes a Notice (E_NOTICE-equivalent) from a Warning
// (E_WARNING-equivalent); both are non-fatal and member ops continue
// after raising either, per spec.md §7's "non-fatal" channel.
type Severity int

const (
	Notice Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "notice"
}

// Record is one non-fatal diagnostic, as delivered to a Sink.
type Record struct {
	Severity Severity
	Code     Code
	Args     []any
}

// Text formats the record's message, interpolating Args into the Code's
// message template when present.
func (r Record) Text() string {
	msg := r.Code.Message()
	if len(r.Args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, r.Args...)
}

// Sink receives non-fatal diagnostics. member package functions take a
// Sink explicitly rather than writing to a package-level global, so tests
// can capture output and production callers can route it to their own
// logger (spec.md §5's explicit-dependency-injection stance).
type Sink interface {
	Notice(code Code, args ...any)
	Warning(code Code, args ...any)
}

// DiscardSink drops every diagnostic. Useful for callers that only care
// about the resulting Cell, not the notice/warning trail.
type DiscardSink struct{}

func (DiscardSink) Notice(Code, ...any)  {}
func (DiscardSink) Warning(Code, ...any) {}

// CollectSink accumulates every diagnostic it's given, in order — the
// shape conformance fixtures assert against.
type CollectSink struct {
	Records []Record
}

func (s *CollectSink) Notice(code Code, args ...any) {
	s.Records = append(s.Records, Record{Severity: Notice, Code: code, Args: args})
}

func (s *CollectSink) Warning(code Code, args ...any) {
	s.Records = append(s.Records, Record{Severity: Warning, Code: code, Args: args})
}

// Fatal is a fatal condition that unwinds the caller, mirroring
// raise_error's long-jump in the original. Carries the Code so callers
// can switch on it without string-matching Error().
type Fatal struct {
	Code Code
	Args []any
}

func (f *Fatal) Error() string {
	return Record{Code: f.Code, Args: f.Args}.Text()
}

func NewFatal(code Code, args ...any) *Fatal {
	return &Fatal{Code: code, Args: args}
}
