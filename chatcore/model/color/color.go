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

package color

import (
	"encoding/json"
	"strings"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"gopkg.in/yaml.v3"
)

// colorKind discriminates between the two forms a Color can hold.
type colorKind uint8

const (
	kindDefault colorKind = iota
	kindHex
)

// Color is the union of the two color forms a component's color field can
// carry: a named palette color (DefaultColor) or an arbitrary RGB color
// (HexColor). The wire representation is a single string whose content
// determines the form: a leading '#' means hex, anything else must be a
// palette name.
//
// This type implements the model.Model interface. A Color is constructed
// through FromDefault, FromHex, or ParseColor and holds exactly one of the
// two forms at a time; the accessors AsDefault and AsHex report which.
//
// The zero value of Color holds the palette color Black, so a Color is
// never formless.
//
// Example usage:
//
//	c := color.FromDefault(color.Red)
//	c2, err := color.ParseColor("#ff5555")
//	if name, ok := c.AsDefault(); ok {
//	    // named palette color
//	}
type Color struct {
	kind colorKind
	def  DefaultColor
	hex  HexColor
}

// FromDefault builds a Color holding a named palette color.
func FromDefault(dc DefaultColor) Color {
	return Color{kind: kindDefault, def: dc}
}

// FromHex builds a Color holding an arbitrary RGB color.
func FromHex(hc HexColor) Color {
	return Color{kind: kindHex, hex: hc}
}

// ParseColor parses a color string, dispatching on its content: input
// starting with '#' is parsed as a "#rrggbb" hex color, anything else as a
// palette name (aliases included). The two failure modes surface the
// underlying parser's error unchanged, so a bad hex string reports which
// hex rule it broke and a bad name reports a DefaultColor ParseError.
//
// Example usage:
//
//	c, err := color.ParseColor("gold")     // palette form
//	c, err = color.ParseColor("#ffaa00")   // hex form
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		hc, err := ParseHexColor(s)
		if err != nil {
			return Color{}, err
		}
		return FromHex(hc), nil
	}

	dc, err := ParseDefaultColor(s)
	if err != nil {
		return Color{}, err
	}
	return FromDefault(dc), nil
}

// AsDefault returns the palette color and true when this Color holds the
// named form, or the zero DefaultColor and false when it holds a hex color.
func (c Color) AsDefault() (DefaultColor, bool) {
	if c.kind == kindDefault {
		return c.def, true
	}
	return Black, false
}

// AsHex returns the RGB color and true when this Color holds the hex form,
// or the zero HexColor and false when it holds a palette name.
func (c Color) AsHex() (HexColor, bool) {
	if c.kind == kindHex {
		return c.hex, true
	}
	return HexColor{}, false
}

// RGB returns the channel values of this Color regardless of form: the hex
// value directly, or the palette entry's RGB for the named form.
func (c Color) RGB() HexColor {
	if c.kind == kindHex {
		return c.hex
	}
	return c.def.RGB()
}

// Downgrade returns the named palette form of this Color. A Color already
// holding a palette name is returned unchanged; a hex color is mapped to
// its perceptually nearest palette entry via Nearest.
func (c Color) Downgrade() Color {
	if c.kind == kindDefault {
		return c
	}
	return FromDefault(Nearest(c.hex))
}

// Compile-time assertion that Color implements model.Model.
var _ model.Model = (*Color)(nil)

// String returns the wire form of the color: the palette name for the
// named form, or "#rrggbb" for the hex form.
func (c Color) String() string {
	if c.kind == kindHex {
		return c.hex.Hex()
	}
	return c.def.String()
}

// Redacted returns the same string representation as String. A color value
// carries no player content.
func (c Color) Redacted() string {
	return c.String()
}

// TypeName returns "Color", the name of this type for error messages,
// logging, and debugging.
func (c Color) TypeName() string {
	return "Color"
}

// IsZero reports whether this Color is the zero value, which holds the
// palette color Black. A Color explicitly set to Black via FromDefault is
// indistinguishable from the zero value; both are valid colors.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Equal reports whether this Color holds the same form and value as
// another. A palette color and the hex color with identical RGB channels
// are NOT equal; the forms serialize differently and renderers may treat
// them differently.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Validate checks the held form: the palette form must be within the known
// vocabulary, and the hex form is always valid.
func (c Color) Validate() error {
	if c.kind == kindDefault {
		return c.def.Validate()
	}
	return c.hex.Validate()
}

// MarshalJSON serializes this Color to a single JSON string: the palette
// name or the "#rrggbb" form, depending on which the Color holds. The held
// value is validated first.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.kind == kindHex {
		return c.hex.MarshalJSON()
	}
	return c.def.MarshalJSON()
}

// UnmarshalJSON deserializes a Color from a JSON string, dispatching on
// the string's content via ParseColor. On failure the receiver is not
// modified.
func (c *Color) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Color", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseColor(str)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalYAML serializes this Color to a YAML string. Semantics mirror
// MarshalJSON.
func (c Color) MarshalYAML() (any, error) {
	if c.kind == kindHex {
		return c.hex.MarshalYAML()
	}
	return c.def.MarshalYAML()
}

// UnmarshalYAML deserializes a Color from a YAML scalar. Semantics mirror
// UnmarshalJSON.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Color", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseColor(str)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
