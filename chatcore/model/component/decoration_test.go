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

package component_test

import (
	stderrors "errors"
	"testing"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"craftwire.dev/chatwire/chatcore/model/component"
)

func TestParseDecoration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    component.Decoration
		wantErr bool
	}{
		{name: "obfuscated", input: "obfuscated", want: component.DecorationObfuscated},
		{name: "bold", input: "bold", want: component.DecorationBold},
		{name: "strikethrough", input: "strikethrough", want: component.DecorationStrikethrough},
		{name: "underlined", input: "underlined", want: component.DecorationUnderlined},
		{name: "italic", input: "italic", want: component.DecorationItalic},
		{name: "historical alias random", input: "random", want: component.DecorationObfuscated},
		{name: "uppercase normalized", input: "BOLD", want: component.DecorationBold},
		{name: "whitespace trimmed", input: "  italic  ", want: component.DecorationItalic},
		{name: "unknown", input: "blinking", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := component.ParseDecoration(tt.input)

			if tt.wantErr {
				var perr *errors.ParseError
				if !stderrors.As(err, &perr) {
					t.Fatalf("ParseDecoration(%q) error = %v, want ParseError", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDecoration(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDecoration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecoration_RandomSerializesCanonically(t *testing.T) {
	// The alias is accepted on input but never emitted.
	d, err := component.ParseDecoration("random")
	if err != nil {
		t.Fatalf("ParseDecoration() error = %v", err)
	}

	data, err := model.ToJSON(d)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `"obfuscated"` {
		t.Errorf("ToJSON() = %s, want %q", data, `"obfuscated"`)
	}
}

func TestDecoration_JSONRoundTrip(t *testing.T) {
	for d := component.DecorationObfuscated; d <= component.DecorationItalic; d++ {
		data, err := model.ToJSON(d)
		if err != nil {
			t.Fatalf("ToJSON(%v) error = %v", d, err)
		}

		var back component.Decoration
		if err := model.FromJSON(data, &back); err != nil {
			t.Fatalf("FromJSON(%s) error = %v", data, err)
		}
		if back != d {
			t.Errorf("round-trip of %v = %v", d, back)
		}
	}
}

func TestDecoration_Validate(t *testing.T) {
	if err := component.DecorationItalic.Validate(); err != nil {
		t.Errorf("Validate() = %v for a known selector", err)
	}
	if err := component.Decoration(9).Validate(); err == nil {
		t.Error("Validate() = nil for an out-of-range selector")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind component.Kind
		want string
	}{
		{component.KindText, "text"},
		{component.KindTranslation, "translate"},
		{component.KindKeyBind, "keybind"},
		{component.KindScore, "score"},
		{component.KindSelector, "selector"},
		{component.KindStyle, "style"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
		if !tt.kind.Valid() {
			t.Errorf("Kind %v reports invalid", tt.kind)
		}
	}

	if component.Kind(42).Valid() {
		t.Error("out-of-range Kind reports valid")
	}
}
