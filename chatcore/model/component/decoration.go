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

package component

import (
	"encoding/json"
	"fmt"
	"strings"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"gopkg.in/yaml.v3"
)

// Decoration selects one of the five boolean style attributes of the
// component envelope. It is used by Base.SetDecoration and Base.Decoration
// to address an attribute by value instead of by field.
//
// This type implements the model.Model interface. The zero value
// (DecorationObfuscated) is a valid selector; IsZero reporting true does
// not indicate an error condition.
//
// JSON and YAML serialization uses the attribute's wire name ("obfuscated",
// "bold", "strikethrough", "underlined", "italic"). The historical name
// "random" is accepted as a parse alias for DecorationObfuscated.
type Decoration uint8

const (
	// DecorationObfuscated selects the obfuscated attribute, which renders
	// text as rapidly cycling glyphs. Historically named "random".
	DecorationObfuscated Decoration = iota

	// DecorationBold selects the bold attribute.
	DecorationBold

	// DecorationStrikethrough selects the strikethrough attribute.
	DecorationStrikethrough

	// DecorationUnderlined selects the underlined attribute.
	DecorationUnderlined

	// DecorationItalic selects the italic attribute.
	DecorationItalic
)

// decorationNames maps each Decoration to its canonical wire name.
var decorationNames = [...]string{
	DecorationObfuscated:    "obfuscated",
	DecorationBold:          "bold",
	DecorationStrikethrough: "strikethrough",
	DecorationUnderlined:    "underlined",
	DecorationItalic:        "italic",
}

// ParseDecoration parses a string into a validated Decoration value.
//
// The input is trimmed and lowercased, then matched against the canonical
// names and the historical alias "random" (which resolves to
// DecorationObfuscated). Unknown names fail with a ParseError.
//
// Example usage:
//
//	d, err := component.ParseDecoration("bold")
//	// d = component.DecorationBold, err = nil
//
//	d, err := component.ParseDecoration("random")
//	// d = component.DecorationObfuscated, err = nil
func ParseDecoration(s string) (Decoration, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for d, name := range decorationNames {
		if normalized == name {
			return Decoration(d), nil
		}
	}
	if normalized == "random" {
		return DecorationObfuscated, nil
	}

	return DecorationObfuscated, &errors.ParseError{Type: "Decoration", Value: s}
}

// Compile-time assertion that Decoration implements model.Model.
var _ model.Model = (*Decoration)(nil)

// String returns the canonical wire name of the attribute. Values outside
// the known set render as "Decoration(n)".
func (d Decoration) String() string {
	if d.Validate() != nil {
		return fmt.Sprintf("Decoration(%d)", uint8(d))
	}
	return decorationNames[d]
}

// Redacted returns the same string representation as String. Attribute
// selectors carry no player content.
func (d Decoration) Redacted() string {
	return d.String()
}

// TypeName returns "Decoration", the name of this type for error messages,
// logging, and debugging.
func (d Decoration) TypeName() string {
	return "Decoration"
}

// IsZero reports whether this Decoration is the zero value, which is
// DecorationObfuscated. The zero value is a valid selector.
func (d Decoration) IsZero() bool {
	return d == DecorationObfuscated
}

// Equal reports whether this Decoration has the same numeric value as
// another.
func (d Decoration) Equal(other Decoration) bool {
	return d == other
}

// Validate checks whether this Decoration is one of the five known
// attribute selectors.
func (d Decoration) Validate() error {
	if d > DecorationItalic {
		return &errors.ValidationError{
			Type:   "Decoration",
			Reason: "value outside the attribute set",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON serializes this Decoration to a JSON string holding its
// canonical wire name.
func (d Decoration) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Decoration", Value: int(d)}
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON deserializes a Decoration from a JSON string via
// ParseDecoration. On failure the receiver is not modified.
func (d *Decoration) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Decoration", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseDecoration(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, using the canonical wire
// name.
func (d Decoration) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Decoration", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Semantics mirror
// UnmarshalJSON.
func (d *Decoration) UnmarshalText(text []byte) error {
	parsed, err := ParseDecoration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML serializes this Decoration to a YAML string holding its
// canonical wire name.
func (d Decoration) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Decoration", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML deserializes a Decoration from a YAML scalar. Semantics
// mirror UnmarshalJSON.
func (d *Decoration) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Decoration", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseDecoration(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
