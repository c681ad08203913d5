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

	"gopkg.in/yaml.v3"

	"craftwire.dev/chatwire/chatcore/errors"
)

// TextComponent is the literal-text variant: its content is the Text
// string, shown verbatim. The wire discriminator is the "text" key:
//
//	{"text": "hello", "bold": true, "color": "#ffffff"}
//
// An empty Text is legal; such a component contributes only its style and
// children, which is the common trick for styling a group of siblings.
//
// This type implements the Component interface. Construct it with NewText
// and style it through the promoted envelope mutators.
type TextComponent struct {
	// Text is the literal content, shown verbatim.
	Text string `json:"text" yaml:"text"`

	Base `yaml:",inline"`
}

// NewText builds a text component with the given literal content and no
// styling.
//
// Example usage:
//
//	c := component.NewText("hello")
//	_ = c.SetDecoration(component.DecorationBold, true)
//	c.SetColor(color.FromHex(color.NewRGB(0xff, 0xff, 0xff)))
func NewText(text string) *TextComponent {
	return &TextComponent{Text: text}
}

// Compile-time assertion that TextComponent implements Component.
var _ Component = (*TextComponent)(nil)

func (t TextComponent) isComponent() {}

// Kind returns KindText.
func (t TextComponent) Kind() Kind {
	return KindText
}

// TypeName returns "TextComponent".
func (t TextComponent) TypeName() string {
	return "TextComponent"
}

// String returns the component's JSON wire form. Use Redacted for
// production logging; Text is player-visible content.
func (t TextComponent) String() string {
	return componentString(&t)
}

// Redacted summarizes the content by length instead of echoing it.
func (t TextComponent) Redacted() string {
	return fmt.Sprintf("TextComponent{text:%d chars, extra:%d}", len(t.Text), t.Extra.Len())
}

// IsZero reports whether the component has no content and an empty
// envelope.
func (t TextComponent) IsZero() bool {
	return t.Text == "" && t.Base.IsZero()
}

// Validate checks the style envelope; any literal content is legal.
func (t TextComponent) Validate() error {
	return t.Base.Validate()
}

// MarshalJSON serializes the component as a flat object: the "text"
// discriminator first, then the envelope fields. The component is
// validated first.
func (t TextComponent) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TextComponent
	return json.Marshal((alias)(t))
}

// UnmarshalJSON deserializes the flat wire object. The "text" key must be
// present; it is the variant's discriminator, and an object without it is
// some other variant's business.
func (t *TextComponent) UnmarshalJSON(data []byte) error {
	type alias TextComponent
	aux := struct {
		Text *string `json:"text"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "TextComponent", Data: data, Reason: err.Error()}
	}
	if aux.Text == nil {
		return &errors.UnmarshalError{Type: "TextComponent", Data: data, Reason: `missing "text" discriminator`}
	}

	t.Text = *aux.Text
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the component as a flat mapping mirroring the
// JSON form.
func (t TextComponent) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TextComponent
	return (alias)(t), nil
}

// UnmarshalYAML deserializes a flat YAML mapping. The "text" key must be
// present.
func (t *TextComponent) UnmarshalYAML(node *yaml.Node) error {
	if !yamlHasKey(node, "text") {
		return &errors.UnmarshalError{Type: "TextComponent", Data: []byte(node.Value), Reason: `missing "text" discriminator`}
	}

	type alias TextComponent
	if err := node.Decode((*alias)(t)); err != nil {
		return &errors.UnmarshalError{Type: "TextComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	return nil
}
