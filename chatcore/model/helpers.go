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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch validation process. This function provides a
// convenient way to validate multiple model instances in a single operation
// while collecting comprehensive error information about all validation
// failures rather than stopping at the first error.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with contextual information including the model's position in the slice
// (zero-indexed) and its type name obtained from TypeName. This allows
// callers to identify exactly which models failed validation and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error that aggregates all individual validation failures using
// multierr. The individual errors can be recovered with multierr.Errors. If
// all models pass validation, the function returns nil. The function always
// processes the entire slice even when early elements fail validation,
// ensuring complete error reporting.
//
// Empty slices are considered valid and return nil.
//
// Example usage for batch validation of a set of components:
//
//	comps := []component.Component{title, subtitle, footer}
//	if err := model.ValidateAll(comps); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T ReadModel](models []T) error {
	var err error

	for i, m := range models {
		if verr := m.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), verr))
		}
	}

	return err
}

// FilterZero returns a new slice containing only non-zero models by removing
// all instances where IsZero returns true. This function provides a
// convenient way to clean slices of empty or uninitialized model values
// before processing or serialization.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice, ensuring that modifications to either
// slice do not affect the other. If all models in the input are zero, the
// function returns an empty slice (not nil). The function does not validate
// models; it only checks for zero values using IsZero.
func FilterZero[T ReadModel](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails, providing a
// convenient way to assert model validity in contexts where invalid models
// represent programming errors rather than recoverable runtime errors. This
// function is designed for use in test code, fixture construction, and other
// scenarios where panic-on-failure semantics are appropriate.
//
// If validation succeeds, MustValidate returns the model unchanged, allowing
// inline initialization patterns. If validation fails, the function panics
// with a formatted message that includes the model's type name and the
// validation error.
//
// Callers MUST only use MustValidate in contexts where panic is an
// acceptable control flow mechanism, such as test setup or package
// initialization. Callers MUST NOT use MustValidate in server code, request
// handlers, or any context where panic would disrupt service availability.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	c := model.MustValidate(color.FromDefault(color.Aqua))
func MustValidate[T ReadModel](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when explicitly
// requested. This function provides a unified interface for obtaining model
// string representations while making the safety characteristics explicit
// through the unsafe parameter.
//
// When unsafe is false (the recommended value for production logging),
// SafeString invokes the model's Redacted method, masking player-authored
// content. When unsafe is true, SafeString invokes the model's String
// method, which MAY include full content; callers MUST only set unsafe to
// true in controlled debugging scenarios.
//
// Example:
//
//	log.Info("broadcast", "component", model.SafeString(comp, false))
func SafeString[T ReadModel](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent and valid state. This function provides a safe convenience
// wrapper around json.Marshal that enforces the contract that only valid
// models can be serialized, preventing transmission of invalid wire data.
//
// The function first invokes the model's Validate method. If validation
// fails, ToJSON returns an error that wraps the validation failure with
// context identifying the model type; no marshaling is attempted. If
// validation succeeds, ToJSON invokes json.Marshal, which dispatches to the
// model's MarshalJSON method when implemented.
//
// Example usage for serializing a component before transmission:
//
//	data, err := model.ToJSON(comp)
//	if err != nil {
//	    return err
//	}
func ToJSON[T ReadModel](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent and valid state. This function provides a safe convenience
// wrapper around yaml.Marshal that enforces the contract that only valid
// models can be serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToYAML returns an error that wraps the validation failure with
// context identifying the model type; no marshaling is attempted. If
// validation succeeds, ToYAML invokes yaml.Marshal, which dispatches to the
// model's MarshalYAML method when implemented.
func ToYAML[T ReadModel](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result to ensure
// that the unmarshaled data represents a consistent and valid model
// instance. This enforces the contract that deserialized models are always
// validated before being returned to callers, rejecting malformed payloads
// at the system boundary rather than letting them cause downstream errors.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromJSON returns an error, the model variable's
// state is undefined and MUST NOT be used.
//
// Example usage for safely loading a styled text component:
//
//	var c component.TextComponent
//	if err := model.FromJSON(data, &c); err != nil {
//	    return err
//	}
func FromJSON[T any, P interface {
	*T
	Model
}](data []byte, m P) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result, the
// YAML counterpart of FromJSON. Configuration files and test fixtures use
// the same logical shape as the JSON wire form, so a value loaded through
// FromYAML is interchangeable with one decoded from the wire.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromYAML returns an error, the model variable's
// state is undefined and MUST NOT be used.
func FromYAML[T any, P interface {
	*T
	Model
}](data []byte, m P) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model by serializing it to JSON and then
// deserializing back into a new instance, ensuring complete independence
// between the original and the copy. This generic implementation works for
// any Model type without type-specific copy logic, at the cost of JSON
// round-trip overhead.
//
// The JSON round-trip guarantees a deep copy: nested components, child
// lists, and styling attributes are reconstructed by value, so modifications
// to either instance never affect the other. For interface-typed component
// trees, use the component package's Clone, which performs the same
// round-trip through the variant dispatcher.
//
// Callers MUST check the returned error before using the cloned model. If
// Clone returns an error, the model return value is a zero-value instance
// that MUST NOT be used.
func Clone[T any, P interface {
	*T
	Model
}](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, P(&clone)); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing their JSON representations byte-for-byte. This generic
// implementation works for any Model type without type-specific comparison
// logic.
//
// Two models are considered equal if and only if their JSON representations
// are identical after marshaling. Because every chatwire model emits fields
// in a deterministic order and omits unset optional fields, this comparison
// is storage-agnostic: a component whose child list still aliases borrowed
// storage compares equal to one holding an owned copy of the same children.
//
// If either marshaling operation fails (typically because one of the values
// is invalid), Equal returns false without attempting to compare partial
// results.
func Equal[T ReadModel](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
