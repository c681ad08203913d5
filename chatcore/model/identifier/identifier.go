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

// Package identifier defines the namespaced resource identifier used
// throughout chatwire wherever a named resource (such as a font) must be
// referenced: a two-part `domain:key` value rendered on the wire as a
// single string.
package identifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"gopkg.in/yaml.v3"
)

// Separator is the character dividing the domain from the key in the
// combined form of an identifier.
//
// An identifier's combined form contains exactly one Separator, and neither
// the domain nor the key may contain it individually. These two rules
// together make the combined form unambiguous: splitting at the separator
// always recovers the original pair.
const Separator = ":"

// Identifier represents a validated two-part namespaced key of the form
// `domain:key`, such as "minecraft:uniform" for a font resource. Identifiers
// are used by the component model to reference named resources without
// carrying the resource itself.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The wire form is always the single combined string.
//
// An Identifier is constructed once through one of the validating factories
// (Parse, New, or WithDefault) and is immutable thereafter. Regardless of
// which factory built it, an Identifier is stored as its (domain, key)
// pair, so equality is defined on the pair: an identifier parsed from
// "chat:badge" and one built from New("chat", "badge") are equal, and the
// plain == operator agrees with Equal.
//
// The zero value of Identifier (empty domain and key) is valid and
// represents "no identifier attached". It marshals to the empty string and
// reports IsZero. Optional identifier-valued fields (such as the component
// envelope's font) use a pointer instead, so the zero value rarely appears
// on the wire in practice.
//
// Example usage:
//
//	font, err := identifier.Parse("minecraft:uniform")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(font.Full())   // "minecraft:uniform"
//	fmt.Println(font.Domain()) // "minecraft"
//	fmt.Println(font.Key())    // "uniform"
type Identifier struct {
	domain string
	key    string
}

// Parse converts a combined `domain:key` string into an Identifier.
//
// Parse succeeds if and only if full contains exactly one Separator. The
// two failure modes are reported distinctly:
//
//   - zero separators: ValidationError with reason "missing ':' separator"
//   - two or more separators: ValidationError with reason
//     "more than one ':' separator"
//
// The halves on either side of the separator become the domain and the key;
// they need no further validation, since neither can contain the separator
// by construction.
//
// Example:
//
//	id, err := identifier.Parse("minecraft:uniform")
func Parse(full string) (Identifier, error) {
	switch strings.Count(full, Separator) {
	case 1:
		i := strings.Index(full, Separator)
		return Identifier{domain: full[:i], key: full[i+1:]}, nil
	case 0:
		return Identifier{}, &errors.ValidationError{
			Type:   "Identifier",
			Reason: "missing ':' separator",
			Value:  full,
		}
	default:
		return Identifier{}, &errors.ValidationError{
			Type:   "Identifier",
			Reason: "more than one ':' separator",
			Value:  full,
		}
	}
}

// New builds an Identifier from its two parts.
//
// New fails with a ValidationError naming the offending field if either
// part contains the Separator; accepting such a part would make the
// combined form ambiguous. Empty parts are permitted (an identifier with
// both parts empty is the zero value).
//
// Example:
//
//	id, err := identifier.New("minecraft", "uniform")
func New(domain, key string) (Identifier, error) {
	if strings.Contains(domain, Separator) {
		return Identifier{}, &errors.ValidationError{
			Type:   "Identifier",
			Field:  "Domain",
			Reason: "must not contain ':'",
			Value:  domain,
		}
	}
	if strings.Contains(key, Separator) {
		return Identifier{}, &errors.ValidationError{
			Type:   "Identifier",
			Field:  "Key",
			Reason: "must not contain ':'",
			Value:  key,
		}
	}
	return Identifier{domain: domain, key: key}, nil
}

// WithDefault builds an Identifier from a value that may or may not already
// be a combined identifier.
//
// If value contains exactly one Separator it is treated as a combined
// `domain:key` string and parsed as such. If it contains no Separator it is
// treated as the key half, paired with defaultDomain (which is itself
// validated to contain no Separator). A value with two or more Separators
// is invalid either way and fails with the same error as Parse.
//
// This is the conventional way to resolve user-supplied resource names
// where a bare name implies a well-known domain:
//
//	id, err := identifier.WithDefault("uniform", "minecraft")
//	// id.Full() == "minecraft:uniform"
//
//	id, err = identifier.WithDefault("custom:fancy", "minecraft")
//	// id.Full() == "custom:fancy"
func WithDefault(value, defaultDomain string) (Identifier, error) {
	if strings.Contains(value, Separator) {
		return Parse(value)
	}
	return New(defaultDomain, value)
}

// Full returns the combined `domain:key` string.
//
// For the zero value, Full returns the empty string rather than a bare
// separator, so that "no identifier" renders as nothing. For any non-zero
// identifier the result contains exactly one Separator and re-parses to an
// equal Identifier.
func (id Identifier) Full() string {
	if id.IsZero() {
		return ""
	}
	return id.domain + Separator + id.key
}

// Domain returns the domain half of the identifier.
func (id Identifier) Domain() string {
	return id.domain
}

// Key returns the key half of the identifier.
func (id Identifier) Key() string {
	return id.key
}

// Partial returns the (domain, key) pair. No validation or re-parsing
// happens on access; the pair is stored as such.
func (id Identifier) Partial() (domain, key string) {
	return id.domain, id.key
}

// String returns the combined form, the same value as Full. This method
// satisfies the model.Loggable interface's String requirement.
func (id Identifier) String() string {
	return id.Full()
}

// Redacted returns the same string representation as String. Identifiers
// name resources, not players or content, so nothing needs masking. This
// method satisfies the model.Loggable interface's Redacted requirement.
func (id Identifier) Redacted() string {
	return id.Full()
}

// TypeName returns "Identifier", the name of the type for logging and
// debugging. This method satisfies the model.Identifiable interface.
func (id Identifier) TypeName() string {
	return "Identifier"
}

// IsZero reports whether both parts are empty, meaning no identifier has
// been attached. This method satisfies the model.ZeroCheckable interface.
func (id Identifier) IsZero() bool {
	return id.domain == "" && id.key == ""
}

// Equal reports whether this Identifier has the same (domain, key) pair as
// another. Because the pair is the stored representation, Equal agrees with
// the == operator; the method exists for consistency with other model types
// and for use in table-driven tests.
func (id Identifier) Equal(other Identifier) bool {
	return id == other
}

// Validate checks that neither part contains the Separator. This method
// satisfies the model.Validatable interface.
//
// The zero value is valid and represents "no identifier attached".
// Identifiers built through the validating factories always pass; Validate
// exists to guard values constructed by other means (struct literals in
// tests, unmarshaled embedded fields).
func (id Identifier) Validate() error {
	if strings.Contains(id.domain, Separator) {
		return &errors.ValidationError{
			Type:   "Identifier",
			Field:  "Domain",
			Reason: "must not contain ':'",
			Value:  id.domain,
		}
	}
	if strings.Contains(id.key, Separator) {
		return &errors.ValidationError{
			Type:   "Identifier",
			Field:  "Key",
			Reason: "must not contain ':'",
			Value:  id.key,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Identifier to its
// combined string form as a JSON string.
//
// MarshalJSON first validates the Identifier; if validation fails,
// marshaling fails with the validation error, preventing malformed
// identifiers from reaching the wire. The zero value marshals to "".
func (id Identifier) MarshalJSON() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return json.Marshal(id.Full())
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string of
// the form `domain:key` into an Identifier.
//
// The empty string unmarshals to the zero value; any other input must
// contain exactly one Separator, enforced through Parse. JSON values that
// are not strings are rejected with an UnmarshalError.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: data, Reason: err.Error()}
	}

	parsed, err := parseOrZero(str)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Identifier to its
// combined string form. Validation mirrors MarshalJSON.
func (id Identifier) MarshalYAML() (any, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return id.Full(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar of
// the form `domain:key` into an Identifier. Semantics mirror UnmarshalJSON.
func (id *Identifier) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := parseOrZero(str)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, using the same combined
// string form as the JSON and YAML encodings.
func (id Identifier) MarshalText() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return []byte(id.Full()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Semantics mirror
// UnmarshalJSON.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := parseOrZero(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// parseOrZero maps the empty string to the zero Identifier and delegates
// everything else to Parse. All the unmarshal paths share this so that
// "" consistently means "no identifier attached".
func parseOrZero(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, nil
	}
	return Parse(s)
}

// Compile-time verification that Identifier implements model.Model.
var _ model.Model = (*Identifier)(nil)
