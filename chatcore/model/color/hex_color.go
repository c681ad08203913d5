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
	"fmt"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Stable validation reasons reported by ParseHexColor. Each malformed input
// triggers exactly one of these, so callers can distinguish which rule the
// input broke.
const (
	// ReasonTooShort is reported when the input has fewer characters than
	// the "#rrggbb" form requires.
	ReasonTooShort = "value too short"

	// ReasonTooLong is reported when the input has more characters than the
	// "#rrggbb" form allows.
	ReasonTooLong = "value too long"

	// ReasonBadCharacters is reported when the input has the right length
	// but is missing the '#' prefix or contains non-hexadecimal digits.
	ReasonBadCharacters = "value contains bad characters"
)

// hexColorLen is the exact length of the wire form: '#' plus six hex digits.
const hexColorLen = 7

// HexColor represents an arbitrary 24-bit RGB color written on the wire as
// a "#rrggbb" string, such as "#ff5555". It is used when a component's
// color falls outside the sixteen-entry palette.
//
// This type implements the model.Model interface. Every HexColor value is
// valid; the three-byte representation cannot encode an out-of-range color,
// so Validate always succeeds and validation effort concentrates in
// ParseHexColor at the input boundary.
//
// The zero value is #000000 (black), a legitimate color; IsZero reporting
// true does not indicate an error condition.
type HexColor struct {
	r, g, b uint8
}

// NewRGB builds a HexColor from its three channel values. All inputs are
// legal, so NewRGB cannot fail.
func NewRGB(r, g, b uint8) HexColor {
	return HexColor{r: r, g: g, b: b}
}

// ParseHexColor parses a "#rrggbb" string into a HexColor.
//
// The input must be exactly seven characters: a '#' followed by six
// hexadecimal digits, case-insensitive. Malformed input fails with a
// ValidationError carrying one of three stable reasons:
//
//   - fewer than seven characters: ReasonTooShort
//   - more than seven characters: ReasonTooLong
//   - correct length but missing '#' or non-hex digits: ReasonBadCharacters
//
// Example usage:
//
//	c, err := color.ParseHexColor("#ff5555")
//	// c.Hex() = "#ff5555", err = nil
func ParseHexColor(s string) (HexColor, error) {
	switch {
	case len(s) < hexColorLen:
		return HexColor{}, &errors.ValidationError{
			Type:   "HexColor",
			Reason: ReasonTooShort,
			Value:  s,
		}
	case len(s) > hexColorLen:
		return HexColor{}, &errors.ValidationError{
			Type:   "HexColor",
			Reason: ReasonTooLong,
			Value:  s,
		}
	}

	if s[0] != '#' {
		return HexColor{}, &errors.ValidationError{
			Type:   "HexColor",
			Reason: ReasonBadCharacters,
			Value:  s,
		}
	}

	var channels [3]uint8
	for i := range channels {
		hi, okHi := hexDigit(s[1+2*i])
		lo, okLo := hexDigit(s[2+2*i])
		if !okHi || !okLo {
			return HexColor{}, &errors.ValidationError{
				Type:   "HexColor",
				Reason: ReasonBadCharacters,
				Value:  s,
			}
		}
		channels[i] = hi<<4 | lo
	}

	return HexColor{r: channels[0], g: channels[1], b: channels[2]}, nil
}

// hexDigit decodes one case-insensitive hexadecimal character.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Hex returns the canonical wire form "#rrggbb" with lowercase digits.
// The output always re-parses to an equal HexColor.
func (hc HexColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", hc.r, hc.g, hc.b)
}

// RGB returns the three channel values.
func (hc HexColor) RGB() (r, g, b uint8) {
	return hc.r, hc.g, hc.b
}

// Colorful converts the HexColor into a colorful.Color for color-space
// computations such as perceptual distance. Channels map to the [0, 1]
// range.
func (hc HexColor) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(hc.r) / 255.0,
		G: float64(hc.g) / 255.0,
		B: float64(hc.b) / 255.0,
	}
}

// Compile-time assertion that HexColor implements model.Model.
var _ model.Model = (*HexColor)(nil)

// String returns the canonical "#rrggbb" form, the same value as Hex.
func (hc HexColor) String() string {
	return hc.Hex()
}

// Redacted returns the same string representation as String. A color value
// carries no player content.
func (hc HexColor) Redacted() string {
	return hc.Hex()
}

// TypeName returns "HexColor", the name of this type for error messages,
// logging, and debugging.
func (hc HexColor) TypeName() string {
	return "HexColor"
}

// IsZero reports whether this HexColor is #000000, the zero value. Black
// is a legitimate color; IsZero exists to satisfy the model.ZeroCheckable
// contract and does not indicate an error condition.
func (hc HexColor) IsZero() bool {
	return hc == HexColor{}
}

// Equal reports whether this HexColor has the same three channel values as
// another.
func (hc HexColor) Equal(other HexColor) bool {
	return hc == other
}

// Validate always returns nil. The three-byte representation cannot encode
// an invalid color; malformed textual input is rejected by ParseHexColor
// before a HexColor value ever exists.
func (hc HexColor) Validate() error {
	return nil
}

// MarshalJSON serializes this HexColor to a JSON string in "#rrggbb" form.
func (hc HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(hc.Hex())
}

// UnmarshalJSON deserializes a HexColor from a JSON string via
// ParseHexColor. On failure the receiver is not modified.
func (hc *HexColor) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "HexColor", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseHexColor(str)
	if err != nil {
		return err
	}

	*hc = parsed
	return nil
}

// MarshalYAML serializes this HexColor to a YAML string in "#rrggbb" form.
func (hc HexColor) MarshalYAML() (any, error) {
	return hc.Hex(), nil
}

// UnmarshalYAML deserializes a HexColor from a YAML scalar. Semantics
// mirror UnmarshalJSON.
func (hc *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "HexColor", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseHexColor(str)
	if err != nil {
		return err
	}

	*hc = parsed
	return nil
}
