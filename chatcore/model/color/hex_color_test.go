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

package color_test

import (
	stderrors "errors"
	"testing"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"craftwire.dev/chatwire/chatcore/model/color"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHex    string
		wantReason string
	}{
		{name: "lowercase", input: "#ff5555", wantHex: "#ff5555"},
		{name: "uppercase normalized", input: "#FF5555", wantHex: "#ff5555"},
		{name: "mixed case", input: "#FfAa00", wantHex: "#ffaa00"},
		{name: "black", input: "#000000", wantHex: "#000000"},
		{name: "white", input: "#ffffff", wantHex: "#ffffff"},
		{name: "empty", input: "", wantReason: color.ReasonTooShort},
		{name: "bare hash", input: "#", wantReason: color.ReasonTooShort},
		{name: "three digit shorthand", input: "#fff", wantReason: color.ReasonTooShort},
		{name: "six digits no hash", input: "ff5555", wantReason: color.ReasonTooShort},
		{name: "eight digits", input: "#ff5555aa", wantReason: color.ReasonTooLong},
		{name: "seven chars no hash", input: "fff5555", wantReason: color.ReasonBadCharacters},
		{name: "non-hex digits", input: "#zzzzzz", wantReason: color.ReasonBadCharacters},
		{name: "one bad digit", input: "#ff55g5", wantReason: color.ReasonBadCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := color.ParseHexColor(tt.input)

			if tt.wantReason != "" {
				var verr *errors.ValidationError
				if !stderrors.As(err, &verr) {
					t.Fatalf("ParseHexColor(%q) error = %v, want ValidationError", tt.input, err)
				}
				if verr.Reason != tt.wantReason {
					t.Errorf("ParseHexColor(%q) reason = %q, want %q", tt.input, verr.Reason, tt.wantReason)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseHexColor(%q) error = %v", tt.input, err)
			}
			if got.Hex() != tt.wantHex {
				t.Errorf("ParseHexColor(%q).Hex() = %q, want %q", tt.input, got.Hex(), tt.wantHex)
			}
		})
	}
}

func TestNewRGB(t *testing.T) {
	hc := color.NewRGB(0xff, 0x55, 0x55)

	r, g, b := hc.RGB()
	if r != 0xff || g != 0x55 || b != 0x55 {
		t.Errorf("RGB() = (%#x, %#x, %#x)", r, g, b)
	}
	if got := hc.Hex(); got != "#ff5555" {
		t.Errorf("Hex() = %q, want %q", got, "#ff5555")
	}
}

func TestHexColor_HexRoundTrip(t *testing.T) {
	// Hex output must re-parse to the same value for every corner of the
	// channel space.
	for _, hc := range []color.HexColor{
		color.NewRGB(0, 0, 0),
		color.NewRGB(255, 255, 255),
		color.NewRGB(1, 2, 3),
		color.NewRGB(0xab, 0xcd, 0xef),
	} {
		back, err := color.ParseHexColor(hc.Hex())
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error = %v", hc.Hex(), err)
		}
		if back != hc {
			t.Errorf("round-trip of %q = %v, want %v", hc.Hex(), back, hc)
		}
	}
}

func TestHexColor_Colorful(t *testing.T) {
	c := color.NewRGB(255, 0, 0).Colorful()
	if c.R != 1.0 || c.G != 0.0 || c.B != 0.0 {
		t.Errorf("Colorful() = %v, want pure red", c)
	}
}

func TestHexColor_JSONRoundTrip(t *testing.T) {
	hc := color.NewRGB(0xff, 0xaa, 0x00)

	data, err := model.ToJSON(hc)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `"#ffaa00"` {
		t.Errorf("ToJSON() = %s, want %q", data, `"#ffaa00"`)
	}

	var back color.HexColor
	if err := model.FromJSON(data, &back); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if back != hc {
		t.Errorf("round-trip = %v, want %v", back, hc)
	}
}

func TestHexColor_YAMLRoundTrip(t *testing.T) {
	hc := color.NewRGB(0x12, 0x34, 0x56)

	data, err := model.ToYAML(hc)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var back color.HexColor
	if err := model.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if back != hc {
		t.Errorf("round-trip = %v, want %v", back, hc)
	}
}

func TestHexColor_Zero(t *testing.T) {
	var hc color.HexColor
	if !hc.IsZero() {
		t.Error("zero HexColor does not report IsZero")
	}
	if got := hc.Hex(); got != "#000000" {
		t.Errorf("zero HexColor Hex() = %q, want #000000", got)
	}
	if err := hc.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil (every HexColor is valid)", err)
	}
}
