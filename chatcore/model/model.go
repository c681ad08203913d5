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

// Package model defines the core contracts and interfaces that all chatwire
// domain model types MUST implement to ensure consistency, type safety, and
// proper behavior across the entire system.
//
// Every domain type representing chat values (such as Identifier, Color,
// HexColor, the component variants, click and hover events) SHOULD implement
// the Model interface or its constituent parts (Validatable, Serializable,
// Loggable, Identifiable, ZeroCheckable). These interfaces establish a
// common contract for validation, serialization, logging, and identity that
// enables generic operations and guarantees safety at compile time.
//
// The contracts defined in this package prioritize wire-format integrity and
// debuggability. Validation ensures that invalid values cannot be marshaled
// onto the wire or accepted from it. Serialization provides round-trip
// guarantees for JSON payloads and YAML documents. Loggable protects
// player-facing content from noisy or sensitive log output. Identifiable
// enables reflection and structured logging. ZeroCheckable supports optional
// field detection, which drives the "absent means inherit" omission rules of
// the component wire format.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. Most model types are designed as
// immutable value types, making them naturally safe for concurrent read
// access. Callers MUST synchronize any concurrent writes to mutable
// instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON, ToYAML,
// Clone, and Equal. These helpers rely on the Model contract and will fail
// at compile time if applied to types that do not implement Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for chatwire domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// wire integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are generally treated as immutable value types. Methods
// defined on Model SHOULD NOT mutate the receiver unless explicitly
// documented (the component envelope's styling mutators are the documented
// exception). Concurrent reads are safe; concurrent writes require external
// synchronization.
//
// Example implementation:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error {
//	    if m.Field == "" {
//	        return errors.New("field required")
//	    }
//	    return nil
//	}
//
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Field == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// ReadModel is the read-side subset of Model: everything except the
// unmarshal methods. Because the unmarshal methods require a pointer
// receiver while the rest of the contract uses value receivers, a value
// copy of a model type satisfies ReadModel but not Model. The generic
// helpers that only inspect or serialize their argument (ToJSON,
// ValidateAll, Equal, and friends) are constrained on ReadModel so they
// accept both values and pointers; helpers that populate a model
// (FromJSON, FromYAML) require a pointer satisfying the full Model
// contract.
type ReadModel interface {
	Validatable
	Marshalable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure wire integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for marshaling, transmission, or further composition.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency, recursively validate any nested models by calling their
// Validate methods, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose and fix the problem. Generic
// error messages such as "validation failed" are discouraged; prefer
// specific messages like "Identifier.Domain must not contain ':'".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state. Validation performs no I/O.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling data from JSON or YAML, after constructing instances from
// user input, and before emitting a value onto the wire. The marshal and
// unmarshal implementations in this repository call Validate automatically
// to enforce this contract.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats. All model types MUST support both
// formats: JSON is the canonical wire format of the chat protocol, and YAML
// mirrors it for configuration files and fixtures.
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized. If the instance fails validation, the
// marshal method MUST return the validation error rather than serializing
// the invalid state. Similarly, implementations MUST call Validate after
// unmarshaling; if the deserialized instance is invalid, the unmarshal
// method MUST return the validation error and callers MUST NOT use the
// receiver.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML. Fields representing unset optional
// styling are omitted from the output and reconstruct to the same unset
// state on the way back in.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion: define a local type alias to the model type, cast the receiver
// to the alias, and delegate to the standard library's marshal or unmarshal
// function.
//
// Example:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
//
//	func (m *MyModel) UnmarshalJSON(data []byte) error {
//	    type alias MyModel
//	    if err := json.Unmarshal(data, (*alias)(m)); err != nil {
//	        return &errors.UnmarshalError{
//	            Type:   "MyModel",
//	            Data:   data,
//	            Reason: err.Error(),
//	        }
//	    }
//	    if err := m.Validate(); err != nil {
//	        return fmt.Errorf("unmarshaled MyModel is invalid: %w", err)
//	    }
//	    return nil
//	}
type Serializable interface {
	Marshalable
	Unmarshalable
}

// Marshalable is the serialization half of Serializable: encoding to JSON
// and YAML. Model types implement it with value receivers, so both values
// and pointers satisfy it.
type Marshalable interface {
	json.Marshaler
	yaml.Marshaler
}

// Unmarshalable is the deserialization half of Serializable: decoding from
// JSON and YAML. Model types implement it with pointer receivers, since
// unmarshaling mutates the receiver.
type Unmarshalable interface {
	json.Unmarshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging. Chat components routinely carry
// player-authored text, insertion payloads and command strings; Loggable
// prevents that content from being dumped wholesale into production logs.
//
// The Redacted method returns a string representation suitable for
// production logging. It MUST summarize or mask content-bearing fields while
// preserving enough structure (type, variant, child counts) for debugging.
// The String method returns a complete human-readable representation that
// MAY include full content; it is intended for development, test assertions,
// and internal tooling. String MUST NOT be used for production logging;
// always use Redacted instead.
//
// Both methods MUST be fast, MUST NOT perform I/O, MUST NOT mutate the
// receiver, and MUST be safe to call concurrently.
//
// If a type contains nested objects that are also Loggable, Redacted SHOULD
// call Redacted on those nested objects to ensure consistent redaction
// throughout the object graph.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production. This method MUST mask or summarize content-bearing fields
	// while preserving enough information for debugging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance. This
	// method MAY include full content and MUST NOT be used for production
	// logging. Use Redacted instead for logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name. All model types MUST provide a type name to
// enable debugging, logging, reflection, and error reporting.
//
// The type name returned by TypeName MUST be constant for a given type,
// unique within the chatwire domain, in CamelCase (for example,
// "Identifier", "HexColor", "TextComponent"), and MUST NOT include a
// package prefix. The name identifies the type, not the instance, so it
// SHOULD NOT vary based on field values.
//
// TypeName MUST be fast and MUST NOT allocate memory. It SHOULD typically
// return a string constant. It MUST NOT have side effects and MUST be safe
// to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, unique within chatwire, in CamelCase, and
	// without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection and is
// what drives the wire format's omission rules: an unset styling attribute,
// an empty child list, or an absent identifier is never emitted.
//
// IsZero MUST return true if and only if the instance is semantically empty.
// For types with a single field, this typically means checking if that field
// is zero. For types with multiple fields, IsZero SHOULD return true only if
// all fields are zero. Note that for some types the zero value is itself a
// valid value (the palette's first color, for example); IsZero returning
// true does not by itself indicate an error condition.
//
// IsZero MUST be fast, deterministic, idempotent, allocation-free, free of
// side effects, and safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and consistent.
// Equal SHOULD compare all semantically significant fields and ignore
// internal representation details that do not affect the logical value (the
// Identifier type, for example, compares its (domain, key) pair regardless
// of whether it was constructed from a combined string or from parts, and
// the copy-on-write component list compares its elements, not its ownership
// state).
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. It returns true if both instances represent the same
	// logical value, false otherwise.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional but recommended for mutable types
// or types containing references to shared data structures, such as
// components carrying child lists that may alias caller-owned storage.
//
// The Clone method MUST create a deep copy, meaning that the returned
// instance shares no mutable state with the original. Modifying the clone
// MUST NOT affect the original, and vice versa. The cloned instance MUST be
// valid (it MUST pass Validate) if the original is valid.
//
// Clone MUST NOT mutate the receiver, MUST NOT have side effects, and MUST
// be safe to call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance. The returned instance has
	// the same value but shares no mutable state with the original.
	Clone() T
}
