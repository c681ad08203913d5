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

// SelectorComponent shows the names of the entities matched by a target
// selector pattern, such as "@a" for all players. The wire discriminator
// is the "selector" key:
//
//	{"selector": "@e[type=cow]"}
//
// Resolution happens server-side against the live world; the model
// carries only the pattern.
type SelectorComponent struct {
	// Selector is the target selector pattern, resolved server-side.
	Selector string `json:"selector" yaml:"selector"`

	Base `yaml:",inline"`
}

// NewSelector builds a selector component for the given pattern.
//
// Example usage:
//
//	c := component.NewSelector("@a")
func NewSelector(selector string) *SelectorComponent {
	return &SelectorComponent{Selector: selector}
}

// Compile-time assertion that SelectorComponent implements Component.
var _ Component = (*SelectorComponent)(nil)

func (s SelectorComponent) isComponent() {}

// Kind returns KindSelector.
func (s SelectorComponent) Kind() Kind {
	return KindSelector
}

// TypeName returns "SelectorComponent".
func (s SelectorComponent) TypeName() string {
	return "SelectorComponent"
}

// String returns the component's JSON wire form. Use Redacted for
// production logging; selector arguments can embed player names.
func (s SelectorComponent) String() string {
	return componentString(&s)
}

// Redacted summarizes the pattern by length; its arguments can embed
// player names.
func (s SelectorComponent) Redacted() string {
	return fmt.Sprintf("SelectorComponent{selector:%d chars, extra:%d}", len(s.Selector), s.Extra.Len())
}

// IsZero reports whether the component has no pattern and an empty
// envelope.
func (s SelectorComponent) IsZero() bool {
	return s.Selector == "" && s.Base.IsZero()
}

// Validate checks the style envelope. The pattern's grammar is the
// server's concern; the model does not parse it.
func (s SelectorComponent) Validate() error {
	return s.Base.Validate()
}

// MarshalJSON serializes the component as a flat object: the "selector"
// discriminator first, then the envelope fields.
func (s SelectorComponent) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias SelectorComponent
	return json.Marshal((alias)(s))
}

// UnmarshalJSON deserializes the flat wire object. The "selector" key
// must be present.
func (s *SelectorComponent) UnmarshalJSON(data []byte) error {
	type alias SelectorComponent
	aux := struct {
		Selector *string `json:"selector"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "SelectorComponent", Data: data, Reason: err.Error()}
	}
	if aux.Selector == nil {
		return &errors.UnmarshalError{Type: "SelectorComponent", Data: data, Reason: `missing "selector" discriminator`}
	}

	s.Selector = *aux.Selector
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the component as a flat mapping mirroring the
// JSON form.
func (s SelectorComponent) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias SelectorComponent
	return (alias)(s), nil
}

// UnmarshalYAML deserializes a flat YAML mapping. The "selector" key must
// be present.
func (s *SelectorComponent) UnmarshalYAML(node *yaml.Node) error {
	if !yamlHasKey(node, "selector") {
		return &errors.UnmarshalError{Type: "SelectorComponent", Data: []byte(node.Value), Reason: `missing "selector" discriminator`}
	}

	type alias SelectorComponent
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "SelectorComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}
