/*
   Copyright 2026 The Craftwire Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides reusable error types for chatwire model types.
//
// This package defines common error types used across the chatcore packages
// (identifier, color, component) when parsing, validating, marshaling and
// unmarshaling wire values. By centralizing these types, the package
// eliminates code duplication and provides a consistent error handling story
// across the entire chatwire surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, a palette color name or an event action name).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling wire data into a model type fails due to
//     invalid input, parse errors or constraint violations. The component
//     deserializer also uses it to report that no variant's discriminator
//     matched an incoming object.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
//
// # Usage
//
// Each package that defines model types can use these error types directly
// or create type aliases for better API clarity:
//
//	import "craftwire.dev/chatwire/chatcore/errors"
//
//	func ParseDefaultColor(s string) (DefaultColor, error) {
//	    switch s {
//	    case "black":
//	        return Black, nil
//	    case "dark_blue":
//	        return DarkBlue, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "DefaultColor", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example,
// "DefaultColor", "Decoration", "ClickAction"), and Value contains the exact
// string that could not be interpreted. This struct is intended for use in
// error messages and diagnostics; callers MAY pattern-match on Type to
// provide type-specific guidance to users or to translate errors into
// friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example,
	// "DefaultColor").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"chatwire: invalid {Type} value: {Value}"
//
// For example:
//
//	"chatwire: invalid DefaultColor value: ultraviolet"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "chatwire: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "DefaultColor"), and Value contains the underlying numeric value that was
// deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, an out-of-range cast that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"chatwire: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer. For example:
//
//	"chatwire: cannot marshal invalid DefaultColor value: 99"
func (e *MarshalError) Error() string {
	return "chatwire: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling wire data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example,
// "TextComponent", "Component"), Data contains the original raw payload
// (typically a JSON fragment), and Reason provides a human-readable
// description of what went wrong (for example, a missing discriminator
// field, a malformed payload, or "no matching variant").
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their payload could not be interpreted.
// Callers MAY wrap UnmarshalError with additional context when propagating
// it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "no matching variant") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"chatwire: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"chatwire: cannot unmarshal Component: no matching variant"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "chatwire: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Identifier", "HexColor"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the failure,
// and Value optionally contains the problematic value.
//
// This error is used by Validate() methods and validating constructors in
// model types to report constraint violations, missing required fields, or
// invalid field values. The Reason strings for a given type are stable, so
// callers can distinguish which validation rule failed (for example, the hex
// color rules "value too short", "value too long" and "value contains bad
// characters" are three distinct reasons).
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation
	// failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"chatwire: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"chatwire: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"chatwire: invalid Identifier.Domain: must not contain ':'"
//	"chatwire: invalid HexColor: value too short"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "chatwire: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "chatwire: invalid " + e.Type + ": " + e.Reason
}
