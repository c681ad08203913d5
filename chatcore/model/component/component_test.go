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
	"strings"
	"testing"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"craftwire.dev/chatwire/chatcore/model/color"
	"craftwire.dev/chatwire/chatcore/model/component"
)

func TestDecode_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		data string
		want component.Kind
	}{
		{name: "text", data: `{"text":"hello"}`, want: component.KindText},
		{name: "empty text", data: `{"text":""}`, want: component.KindText},
		{name: "translation", data: `{"translate":"chat.type.text"}`, want: component.KindTranslation},
		{name: "keybind", data: `{"keybind":"key.jump"}`, want: component.KindKeyBind},
		{name: "score", data: `{"score":{"name":"Steve","objective":"kills"}}`, want: component.KindScore},
		{name: "selector", data: `{"selector":"@a"}`, want: component.KindSelector},
		{name: "bare style object", data: `{"bold":true,"color":"gold"}`, want: component.KindStyle},
		{name: "empty object", data: `{}`, want: component.KindStyle},
		{name: "styled text", data: `{"text":"hello","bold":true,"color":"#ffffff"}`, want: component.KindText},
		{name: "text wins over later discriminators", data: `{"text":"x","selector":"@a"}`, want: component.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := component.Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", tt.data, err)
			}
			if c.Kind() != tt.want {
				t.Errorf("Decode(%s) kind = %v, want %v", tt.data, c.Kind(), tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: `{not json`},
		{name: "not an object", data: `[1,2]`},
		{name: "malformed discriminator payload", data: `{"text":5}`},
		{name: "malformed score", data: `{"score":{"objective":"kills"}}`},
		{name: "bad style value", data: `{"color":"ultraviolet"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := component.Decode([]byte(tt.data)); err == nil {
				t.Errorf("Decode(%s) = nil error", tt.data)
			}
		})
	}
}

func TestDecode_NoMatchingVariant(t *testing.T) {
	// A present-but-malformed discriminator must not fall through to the
	// style-only variant.
	_, err := component.Decode([]byte(`{"text":5}`))

	var uerr *errors.UnmarshalError
	if !stderrors.As(err, &uerr) {
		t.Fatalf("Decode() error = %v, want UnmarshalError", err)
	}
	if uerr.Reason != "no matching variant" {
		t.Errorf("reason = %q, want %q", uerr.Reason, "no matching variant")
	}
}

func TestTextComponent_FlattenedWire(t *testing.T) {
	c := component.NewText("hello")
	if err := c.SetDecoration(component.DecorationBold, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	hex, err := color.ParseHexColor("#ffffff")
	if err != nil {
		t.Fatalf("ParseHexColor() error = %v", err)
	}
	c.SetColor(color.FromHex(hex))

	data, err := model.ToJSON(c)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `{"text":"hello","bold":true,"color":"#ffffff"}` {
		t.Errorf("ToJSON() = %s, want flattened envelope with the discriminator first", data)
	}
}

func TestComponent_UnsetFieldsAbsentFromWire(t *testing.T) {
	data, err := model.ToJSON(component.NewText("plain"))
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `{"text":"plain"}` {
		t.Errorf("ToJSON() = %s, unset fields leaked onto the wire", data)
	}
}

func TestComponent_TreeRoundTrip(t *testing.T) {
	root := component.NewText("root")
	if err := root.SetDecoration(component.DecorationBold, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	root.SetColor(color.FromDefault(color.Gold))
	root.OnClick(component.ChangePage(3))
	root.OnHover(component.ShowText(component.NewText("tooltip")))

	child := component.NewTranslation("chat.type.text",
		component.NewText("Steve"),
		component.NewText("hi"),
	)
	root.AddExtra(child, component.NewKeyBind("key.jump"))

	data, err := model.ToJSON[component.Component](root)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	back, err := component.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !model.Equal[component.Component](root, back) {
		t.Errorf("round-trip mismatch:\n got %s\nwant %s", back, root)
	}

	// The decoded tree is a text component with two children of the right
	// kinds.
	tc, ok := back.(*component.TextComponent)
	if !ok {
		t.Fatalf("Decode() = %T, want *TextComponent", back)
	}
	kids := tc.Extras()
	if len(kids) != 2 || kids[0].Kind() != component.KindTranslation || kids[1].Kind() != component.KindKeyBind {
		t.Errorf("children = %v", kids)
	}
}

func TestComponent_StyleOnlyRoundTrip(t *testing.T) {
	c := component.NewStyle()
	c.SetColor(color.FromDefault(color.Gold))
	c.AddExtra(component.NewText("content"))

	data, err := model.ToJSON[component.Component](c)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	back, err := component.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.Kind() != component.KindStyle {
		t.Errorf("Decode() kind = %v, want KindStyle", back.Kind())
	}
	if !model.Equal[component.Component](c, back) {
		t.Errorf("round-trip mismatch: got %s, want %s", back, c)
	}
}

func TestTranslationComponent_Args(t *testing.T) {
	c := component.NewTranslation("commands.kill.success")
	if len(c.Args()) != 0 {
		t.Fatalf("new translation has %d args", len(c.Args()))
	}

	c.AddArg(component.NewText("Steve"))
	c.AddArgs(component.NewText("Creeper"), component.NewText("Sword"))

	if got := len(c.Args()); got != 3 {
		t.Errorf("Args() len = %d, want 3", got)
	}

	data, err := model.ToJSON[component.Component](c)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if !strings.Contains(string(data), `"with":[{"text":"Steve"}`) {
		t.Errorf("ToJSON() = %s, want a with array", data)
	}
}

func TestTranslationComponent_EmptyWithOmitted(t *testing.T) {
	data, err := model.ToJSON[component.Component](component.NewTranslation("key.only"))
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if strings.Contains(string(data), "with") {
		t.Errorf("ToJSON() = %s, empty argument list leaked onto the wire", data)
	}
}

func TestComponent_Clone(t *testing.T) {
	orig := component.NewText("original")
	orig.AddExtra(component.NewText("child"))

	clone, err := component.Clone(orig)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !model.Equal[component.Component](orig, clone) {
		t.Errorf("Clone() = %s, want %s", clone, orig)
	}

	// Mutating the clone must not affect the original.
	clone.Envelope().AddExtra(component.NewText("clone-only"))
	if got := len(orig.Extras()); got != 1 {
		t.Errorf("original child count = %d after mutating the clone", got)
	}
}

func TestComponent_MarshalInvalidFails(t *testing.T) {
	c := component.NewScore("", "kills")
	if _, err := model.ToJSON[component.Component](c); err == nil {
		t.Error("ToJSON() = nil error for an invalid component")
	}
}

func TestComponent_YAMLRoundTrip(t *testing.T) {
	root := component.NewText("root")
	if err := root.SetDecoration(component.DecorationItalic, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	root.AddExtra(component.NewSelector("@a"), component.NewScore("Steve", "kills"))

	data, err := model.ToYAML[component.Component](root)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var back component.TextComponent
	if err := model.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if !model.Equal[component.Component](root, &back) {
		t.Errorf("round-trip mismatch:\n got %s\nwant %s", &back, root)
	}
}

func TestComponent_YAMLFlattenedEnvelope(t *testing.T) {
	// The YAML form mirrors the flattened JSON object: envelope fields sit
	// beside the discriminator, not under a nested key.
	doc := []byte("text: hello\nbold: true\ncolor: gold\n")

	var c component.TextComponent
	if err := model.FromYAML(doc, &c); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if c.Text != "hello" {
		t.Errorf("Text = %q", c.Text)
	}
	if c.Bold == nil || !*c.Bold {
		t.Error("bold not decoded from the inline envelope")
	}
	if c.Color == nil || c.Color.String() != "gold" {
		t.Error("color not decoded from the inline envelope")
	}
}

func TestComponent_DirectUnmarshalRequiresDiscriminator(t *testing.T) {
	var c component.TextComponent
	err := c.UnmarshalJSON([]byte(`{"bold":true}`))

	var uerr *errors.UnmarshalError
	if !stderrors.As(err, &uerr) {
		t.Fatalf("UnmarshalJSON() error = %v, want UnmarshalError", err)
	}
	if !strings.Contains(uerr.Reason, "discriminator") {
		t.Errorf("reason = %q, want a discriminator complaint", uerr.Reason)
	}
}

func TestComponent_Redacted(t *testing.T) {
	c := component.NewText("do not log me")
	if got := c.Redacted(); strings.Contains(got, "do not log me") {
		t.Errorf("Redacted() = %q, leaked the content", got)
	}
	if got := c.String(); !strings.Contains(got, "do not log me") {
		t.Errorf("String() = %q, want the content", got)
	}
}

func TestComponent_EnvelopeAccess(t *testing.T) {
	// Envelope gives generic code a single way to style any variant.
	variants := []component.Component{
		component.NewText("a"),
		component.NewTranslation("b"),
		component.NewKeyBind("c"),
		component.NewScore("d", "e"),
		component.NewSelector("f"),
		component.NewStyle(),
	}

	for _, c := range variants {
		c.Envelope().SetInsertion("shared")
		env := c.Envelope()
		if env.Insertion == nil || *env.Insertion != "shared" {
			t.Errorf("%s: insertion not set through the envelope", c.TypeName())
		}
	}
}
