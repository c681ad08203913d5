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

// TranslationComponent is the localizable variant: its content is a
// translation key resolved against the viewing client's language files,
// with substitution arguments that are themselves components. The wire
// discriminator is the "translate" key:
//
//	{"translate": "chat.type.text", "with": [{"text": "Steve"}, {"text": "hi"}]}
//
// The With list holds the arguments substituted into the resolved format
// string in order; it shares List's copy-on-write semantics and is absent
// from the wire when empty.
type TranslationComponent struct {
	// Translate is the translation key, resolved client-side.
	Translate string `json:"translate" yaml:"translate"`

	// With holds the substitution arguments in order.
	With List `json:"with,omitzero" yaml:"with,omitempty"`

	Base `yaml:",inline"`
}

// NewTranslation builds a translation component for the given key with
// the given substitution arguments.
//
// Example usage:
//
//	c := component.NewTranslation("chat.type.text",
//	    component.NewText("Steve"),
//	    component.NewText("hi"),
//	)
func NewTranslation(key string, args ...Component) *TranslationComponent {
	return &TranslationComponent{Translate: key, With: Of(args...)}
}

// AddArg appends one substitution argument.
func (t *TranslationComponent) AddArg(arg Component) {
	t.With.Append(arg)
}

// AddArgs appends substitution arguments in order.
func (t *TranslationComponent) AddArgs(args ...Component) {
	t.With.Append(args...)
}

// Args returns the substitution arguments as a view without copying.
// Callers MUST NOT modify the returned slice; use AddArg or AddArgs.
func (t *TranslationComponent) Args() []Component {
	return t.With.All()
}

// Compile-time assertion that TranslationComponent implements Component.
var _ Component = (*TranslationComponent)(nil)

func (t TranslationComponent) isComponent() {}

// Kind returns KindTranslation.
func (t TranslationComponent) Kind() Kind {
	return KindTranslation
}

// TypeName returns "TranslationComponent".
func (t TranslationComponent) TypeName() string {
	return "TranslationComponent"
}

// String returns the component's JSON wire form. Use Redacted for
// production logging; the arguments carry player content.
func (t TranslationComponent) String() string {
	return componentString(&t)
}

// Redacted names the translation key (a client-side constant, not player
// content) and summarizes the arguments by count.
func (t TranslationComponent) Redacted() string {
	return fmt.Sprintf("TranslationComponent{key:%s, args:%d, extra:%d}", t.Translate, t.With.Len(), t.Extra.Len())
}

// IsZero reports whether the component has no key, no arguments, and an
// empty envelope.
func (t TranslationComponent) IsZero() bool {
	return t.Translate == "" && t.With.IsZero() && t.Base.IsZero()
}

// Validate checks the argument list and the style envelope.
func (t TranslationComponent) Validate() error {
	if err := t.With.Validate(); err != nil {
		return fmt.Errorf("invalid argument list: %w", err)
	}
	return t.Base.Validate()
}

// MarshalJSON serializes the component as a flat object: the "translate"
// discriminator first, then "with" when non-empty, then the envelope
// fields. The component is validated first.
func (t TranslationComponent) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TranslationComponent
	return json.Marshal((alias)(t))
}

// UnmarshalJSON deserializes the flat wire object. The "translate" key
// must be present.
func (t *TranslationComponent) UnmarshalJSON(data []byte) error {
	type alias TranslationComponent
	aux := struct {
		Translate *string `json:"translate"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "TranslationComponent", Data: data, Reason: err.Error()}
	}
	if aux.Translate == nil {
		return &errors.UnmarshalError{Type: "TranslationComponent", Data: data, Reason: `missing "translate" discriminator`}
	}

	t.Translate = *aux.Translate
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the component as a flat mapping mirroring the
// JSON form.
func (t TranslationComponent) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TranslationComponent
	return (alias)(t), nil
}

// UnmarshalYAML deserializes a flat YAML mapping. The "translate" key
// must be present.
func (t *TranslationComponent) UnmarshalYAML(node *yaml.Node) error {
	if !yamlHasKey(node, "translate") {
		return &errors.UnmarshalError{Type: "TranslationComponent", Data: []byte(node.Value), Reason: `missing "translate" discriminator`}
	}

	type alias TranslationComponent
	if err := node.Decode((*alias)(t)); err != nil {
		return &errors.UnmarshalError{Type: "TranslationComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	return nil
}
