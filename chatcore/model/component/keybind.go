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

// KeyBindComponent shows the name of whatever key the viewing player has
// bound to an action, such as "key.jump" resolving to "Space". The wire
// discriminator is the "keybind" key:
//
//	{"keybind": "key.jump"}
//
// Resolution happens client-side; the model carries only the binding name.
type KeyBindComponent struct {
	// KeyBind is the binding name, resolved client-side.
	KeyBind string `json:"keybind" yaml:"keybind"`

	Base `yaml:",inline"`
}

// NewKeyBind builds a key-binding component for the given binding name.
//
// Example usage:
//
//	c := component.NewKeyBind("key.jump")
func NewKeyBind(keyBind string) *KeyBindComponent {
	return &KeyBindComponent{KeyBind: keyBind}
}

// Compile-time assertion that KeyBindComponent implements Component.
var _ Component = (*KeyBindComponent)(nil)

func (k KeyBindComponent) isComponent() {}

// Kind returns KindKeyBind.
func (k KeyBindComponent) Kind() Kind {
	return KindKeyBind
}

// TypeName returns "KeyBindComponent".
func (k KeyBindComponent) TypeName() string {
	return "KeyBindComponent"
}

// String returns the component's JSON wire form.
func (k KeyBindComponent) String() string {
	return componentString(&k)
}

// Redacted names the binding; binding names are client constants, not
// player content.
func (k KeyBindComponent) Redacted() string {
	return fmt.Sprintf("KeyBindComponent{keybind:%s, extra:%d}", k.KeyBind, k.Extra.Len())
}

// IsZero reports whether the component has no binding name and an empty
// envelope.
func (k KeyBindComponent) IsZero() bool {
	return k.KeyBind == "" && k.Base.IsZero()
}

// Validate checks the style envelope.
func (k KeyBindComponent) Validate() error {
	return k.Base.Validate()
}

// MarshalJSON serializes the component as a flat object: the "keybind"
// discriminator first, then the envelope fields.
func (k KeyBindComponent) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	type alias KeyBindComponent
	return json.Marshal((alias)(k))
}

// UnmarshalJSON deserializes the flat wire object. The "keybind" key must
// be present.
func (k *KeyBindComponent) UnmarshalJSON(data []byte) error {
	type alias KeyBindComponent
	aux := struct {
		KeyBind *string `json:"keybind"`
		*alias
	}{alias: (*alias)(k)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "KeyBindComponent", Data: data, Reason: err.Error()}
	}
	if aux.KeyBind == nil {
		return &errors.UnmarshalError{Type: "KeyBindComponent", Data: data, Reason: `missing "keybind" discriminator`}
	}

	k.KeyBind = *aux.KeyBind
	if err := k.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", k.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the component as a flat mapping mirroring the
// JSON form.
func (k KeyBindComponent) MarshalYAML() (any, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	type alias KeyBindComponent
	return (alias)(k), nil
}

// UnmarshalYAML deserializes a flat YAML mapping. The "keybind" key must
// be present.
func (k *KeyBindComponent) UnmarshalYAML(node *yaml.Node) error {
	if !yamlHasKey(node, "keybind") {
		return &errors.UnmarshalError{Type: "KeyBindComponent", Data: []byte(node.Value), Reason: `missing "keybind" discriminator`}
	}

	type alias KeyBindComponent
	if err := node.Decode((*alias)(k)); err != nil {
		return &errors.UnmarshalError{Type: "KeyBindComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := k.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", k.TypeName(), err)
	}
	return nil
}
