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

// StyleComponent is the style-only variant: an envelope with no content of
// its own. It has no wire discriminator; an object carrying none of the
// discriminator keys decodes as this variant:
//
//	{"bold": true, "color": "gold", "extra": [{"text": "hello"}]}
//
// Such objects appear in real payloads as style-carrying parents whose
// visible content lives entirely in their children, so the decoder accepts
// them rather than rejecting the tree.
type StyleComponent struct {
	Base `yaml:",inline"`
}

// NewStyle builds an empty style-only component, to be filled in through
// the envelope mutators.
//
// Example usage:
//
//	c := component.NewStyle()
//	c.SetColor(color.FromDefault(color.Gold))
//	c.AddExtra(component.NewText("hello"))
func NewStyle() *StyleComponent {
	return &StyleComponent{}
}

// Compile-time assertion that StyleComponent implements Component.
var _ Component = (*StyleComponent)(nil)

func (s StyleComponent) isComponent() {}

// Kind returns KindStyle.
func (s StyleComponent) Kind() Kind {
	return KindStyle
}

// TypeName returns "StyleComponent".
func (s StyleComponent) TypeName() string {
	return "StyleComponent"
}

// String returns the component's JSON wire form.
func (s StyleComponent) String() string {
	return componentString(&s)
}

// Redacted summarizes the children by count; the style fields themselves
// carry no player content, but the insertion text might.
func (s StyleComponent) Redacted() string {
	return fmt.Sprintf("StyleComponent{extra:%d}", s.Extra.Len())
}

// IsZero reports whether the envelope is entirely empty.
func (s StyleComponent) IsZero() bool {
	return s.Base.IsZero()
}

// Validate checks the style envelope.
func (s StyleComponent) Validate() error {
	return s.Base.Validate()
}

// MarshalJSON serializes the envelope as a flat object. An empty
// component marshals to {}.
func (s StyleComponent) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias StyleComponent
	return json.Marshal((alias)(s))
}

// UnmarshalJSON deserializes a flat wire object. There is no
// discriminator to check; the variant dispatcher only routes objects here
// when no discriminator key is present.
func (s *StyleComponent) UnmarshalJSON(data []byte) error {
	type alias StyleComponent
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "StyleComponent", Data: data, Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the envelope as a flat mapping mirroring the
// JSON form.
func (s StyleComponent) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias StyleComponent
	return (alias)(s), nil
}

// UnmarshalYAML deserializes a flat YAML mapping.
func (s *StyleComponent) UnmarshalYAML(node *yaml.Node) error {
	type alias StyleComponent
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "StyleComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}
