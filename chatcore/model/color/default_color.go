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

// Package color defines the color values a chat component can carry: the
// sixteen named palette colors plus the reset pseudo-color (DefaultColor),
// arbitrary 24-bit RGB colors (HexColor), and the Color union that holds
// either form behind a single wire field.
package color

import (
	"encoding/json"
	"fmt"
	"strings"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"gopkg.in/yaml.v3"
)

// DefaultColor identifies one of the sixteen named palette colors, or the
// reset pseudo-color that clears any inherited color.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value of DefaultColor (Black) is a valid
// palette color; IsZero reporting true for Black does not indicate an error
// condition.
//
// JSON and YAML serialization uses the snake_case palette names ("black",
// "dark_blue", "light_purple", ...) rather than numeric values, matching the
// component wire format and keeping serialized documents human readable.
//
// Several palette entries are known under more than one name. The canonical
// constants follow the wire names; the alias constants (DarkCyan, Purple,
// BrightGreen, Cyan, Pink) are provided for callers who know the colors by
// their informal names. Aliases share the numeric value of their canonical
// constant, so they compare equal and serialize to the canonical wire name.
type DefaultColor int

const (
	// Black is the palette color #000000 and the zero value of DefaultColor.
	Black DefaultColor = iota

	// DarkBlue is the palette color #0000AA.
	DarkBlue

	// DarkGreen is the palette color #00AA00.
	DarkGreen

	// DarkAqua is the palette color #00AAAA, also known as dark cyan.
	DarkAqua

	// DarkRed is the palette color #AA0000.
	DarkRed

	// DarkPurple is the palette color #AA00AA, also known as purple.
	DarkPurple

	// Gold is the palette color #FFAA00.
	Gold

	// Gray is the palette color #AAAAAA.
	Gray

	// DarkGray is the palette color #555555.
	DarkGray

	// Blue is the palette color #5555FF.
	Blue

	// Green is the palette color #55FF55, also known as bright green.
	Green

	// Aqua is the palette color #55FFFF, also known as cyan.
	Aqua

	// Red is the palette color #FF5555.
	Red

	// LightPurple is the palette color #FF55FF, also known as pink.
	LightPurple

	// Yellow is the palette color #FFFF55.
	Yellow

	// White is the palette color #FFFFFF.
	White

	// Reset is the pseudo-color that clears any color inherited from a
	// parent component, restoring the renderer's default. It is a member of
	// the color vocabulary but carries no RGB value of its own.
	Reset
)

// Informal aliases for palette entries known under more than one name.
// Each alias is the same value as its canonical constant.
const (
	// DarkCyan is an alias for DarkAqua.
	DarkCyan = DarkAqua

	// Purple is an alias for DarkPurple.
	Purple = DarkPurple

	// BrightGreen is an alias for Green.
	BrightGreen = Green

	// Cyan is an alias for Aqua.
	Cyan = Aqua

	// Pink is an alias for LightPurple.
	Pink = LightPurple
)

// defaultColorNames maps each DefaultColor to its canonical wire name,
// indexed by the constant's numeric value.
var defaultColorNames = [...]string{
	Black:       "black",
	DarkBlue:    "dark_blue",
	DarkGreen:   "dark_green",
	DarkAqua:    "dark_aqua",
	DarkRed:     "dark_red",
	DarkPurple:  "dark_purple",
	Gold:        "gold",
	Gray:        "gray",
	DarkGray:    "dark_gray",
	Blue:        "blue",
	Green:       "green",
	Aqua:        "aqua",
	Red:         "red",
	LightPurple: "light_purple",
	Yellow:      "yellow",
	White:       "white",
	Reset:       "reset",
}

// ParseDefaultColor parses a string into a validated DefaultColor value.
//
// ParseDefaultColor applies normalization and validation to the input
// string. The normalization process trims leading and trailing whitespace
// via strings.TrimSpace and converts the string to lowercase via
// strings.ToLower. After normalization, the string is matched against the
// canonical wire names and the informal alias names ("dark_cyan", "purple",
// "bright_green", "cyan", "pink"); aliases resolve to their canonical
// constant.
//
// If the input does not match any known name, ParseDefaultColor returns
// Black and a ParseError describing the failure.
//
// Example usage:
//
//	c, err := color.ParseDefaultColor("light_purple")
//	// c = color.LightPurple, err = nil
//
//	c, err := color.ParseDefaultColor("  PINK  ")
//	// c = color.LightPurple, err = nil
//
//	c, err := color.ParseDefaultColor("ultraviolet")
//	// c = color.Black, err = ParseError
func ParseDefaultColor(s string) (DefaultColor, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for dc, name := range defaultColorNames {
		if normalized == name {
			return DefaultColor(dc), nil
		}
	}

	switch normalized {
	case "dark_cyan":
		return DarkCyan, nil
	case "purple":
		return Purple, nil
	case "bright_green":
		return BrightGreen, nil
	case "cyan":
		return Cyan, nil
	case "pink":
		return Pink, nil
	}

	return Black, &errors.ParseError{Type: "DefaultColor", Value: s}
}

// Compile-time assertion that DefaultColor implements model.Model.
var _ model.Model = (*DefaultColor)(nil)

// String returns the canonical wire name of the color: "black",
// "dark_blue", ..., "white", or "reset". Values outside the palette render
// as "DefaultColor(n)".
//
// This method implements the fmt.Stringer interface and the model.Loggable
// contract.
func (dc DefaultColor) String() string {
	if dc.Validate() != nil {
		return fmt.Sprintf("DefaultColor(%d)", int(dc))
	}
	return defaultColorNames[dc]
}

// Redacted returns the same string representation as String. Palette names
// carry no player content, so nothing needs masking.
func (dc DefaultColor) Redacted() string {
	return dc.String()
}

// TypeName returns "DefaultColor", the name of this type for error
// messages, logging, and debugging.
func (dc DefaultColor) TypeName() string {
	return "DefaultColor"
}

// IsZero reports whether this DefaultColor is the zero value, which is
// Black. Black is a valid palette color; IsZero exists to satisfy the
// model.ZeroCheckable contract and does not indicate an error condition.
func (dc DefaultColor) IsZero() bool {
	return dc == Black
}

// Equal reports whether this DefaultColor has the same numeric value as
// another. Aliases compare equal to their canonical constant.
func (dc DefaultColor) Equal(other DefaultColor) bool {
	return dc == other
}

// Validate checks whether this DefaultColor is within the known vocabulary
// (Black through White, plus Reset). Out-of-range values produce a
// ValidationError; they typically indicate an unchecked cast.
func (dc DefaultColor) Validate() error {
	if dc < Black || dc > Reset {
		return &errors.ValidationError{
			Type:   "DefaultColor",
			Reason: "value outside the palette",
			Value:  int(dc),
		}
	}
	return nil
}

// MarshalJSON serializes this DefaultColor to a JSON string holding its
// canonical wire name. The value is validated first; out-of-range values
// fail with a MarshalError rather than emitting a bogus name.
//
// Example output:
//
//	"light_purple"
func (dc DefaultColor) MarshalJSON() ([]byte, error) {
	if err := dc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "DefaultColor", Value: int(dc)}
	}
	return json.Marshal(dc.String())
}

// UnmarshalJSON deserializes a DefaultColor from a JSON string. The input
// is normalized and matched against the wire names and aliases via
// ParseDefaultColor. On failure the receiver is not modified.
func (dc *DefaultColor) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "DefaultColor", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseDefaultColor(str)
	if err != nil {
		return err
	}

	*dc = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, using the same canonical
// wire name as the JSON and YAML encodings.
func (dc DefaultColor) MarshalText() ([]byte, error) {
	if err := dc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "DefaultColor", Value: int(dc)}
	}
	return []byte(dc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Semantics mirror
// UnmarshalJSON.
func (dc *DefaultColor) UnmarshalText(text []byte) error {
	parsed, err := ParseDefaultColor(string(text))
	if err != nil {
		return err
	}
	*dc = parsed
	return nil
}

// MarshalYAML serializes this DefaultColor to a YAML string holding its
// canonical wire name. Validation mirrors MarshalJSON.
func (dc DefaultColor) MarshalYAML() (any, error) {
	if err := dc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "DefaultColor", Value: int(dc)}
	}
	return dc.String(), nil
}

// UnmarshalYAML deserializes a DefaultColor from a YAML scalar. Semantics
// mirror UnmarshalJSON.
func (dc *DefaultColor) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DefaultColor", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseDefaultColor(str)
	if err != nil {
		return err
	}

	*dc = parsed
	return nil
}
