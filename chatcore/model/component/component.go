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

// Package component defines the rich-text chat component model: the sealed
// Component sum over six variants (text, translation, key binding,
// scoreboard score, entity selector, and style-only), the shared style
// envelope each variant embeds, click and hover events, and copy-on-write
// child lists.
//
// The wire format is untagged: a serialized component is a flat JSON
// object whose variant is identified by which discriminator key it carries
// ("text", "translate", "keybind", "score", "selector"), with the style
// envelope's fields flattened into the same object. Decode performs the
// variant dispatch; the variants' own marshalers produce the flattened
// form. An object carrying no discriminator at all is the style-only
// variant.
//
// Component trees are built top-down: content variants carry child
// components in their envelope's Extra list, and children inherit any
// style field they leave unset. Trees are acyclic by construction; the
// model offers no way to re-parent a component into its own subtree
// without first serializing it, which copies.
package component

import (
	"encoding/json"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Component is the sealed sum over the six component variants. Every
// variant satisfies the full model.Model contract and additionally reports
// its Kind and exposes its style envelope.
//
// The interface is sealed by an unexported method: only the variants in
// this package implement it. Code consuming a Component switches on Kind
// or type-asserts to the concrete variant; code producing one uses the
// New* constructors or Decode.
type Component interface {
	model.Model

	// Kind identifies which variant this component is.
	Kind() Kind

	// Envelope returns the component's style envelope for reading or
	// mutating its style without knowing the variant.
	Envelope() *Base

	// isComponent seals the interface to this package's variants.
	isComponent()
}

// variantProbes lists the discriminator keys in dispatch priority order,
// paired with a factory for the matching variant. The order is part of
// the wire contract and must not change: an object carrying several
// discriminators decodes as the earliest match.
var variantProbes = []struct {
	key  string
	make func() Component
}{
	{"text", func() Component { return new(TextComponent) }},
	{"translate", func() Component { return new(TranslationComponent) }},
	{"keybind", func() Component { return new(KeyBindComponent) }},
	{"score", func() Component { return new(ScoreComponent) }},
	{"selector", func() Component { return new(SelectorComponent) }},
}

// Decode deserializes a JSON object into the matching component variant.
//
// Dispatch is untagged: the discriminator keys are probed in the fixed
// priority order text, translate, keybind, score, selector. A variant is
// selected when its discriminator key is present in the object and the
// object decodes into the variant without error; otherwise the next
// variant is tried. An object carrying no discriminator key at all is
// decoded as the style-only variant.
//
// If no variant accepts the object, Decode fails with an UnmarshalError
// whose reason is "no matching variant". An object that carries a
// discriminator with a malformed payload is NOT reinterpreted as
// style-only; it fails.
//
// Example usage:
//
//	c, err := component.Decode([]byte(`{"text": "hello", "bold": true}`))
//	if err != nil {
//	    return err
//	}
//	// c.(*component.TextComponent).Text == "hello"
func Decode(data []byte) (Component, error) {
	if !gjson.ValidBytes(data) {
		return nil, &errors.UnmarshalError{Type: "Component", Data: data, Reason: "invalid JSON"}
	}

	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return nil, &errors.UnmarshalError{Type: "Component", Data: data, Reason: "not a JSON object"}
	}

	sawDiscriminator := false
	for _, probe := range variantProbes {
		if !obj.Get(probe.key).Exists() {
			continue
		}
		sawDiscriminator = true

		c := probe.make()
		if err := json.Unmarshal(data, c); err == nil {
			return c, nil
		}
	}

	if !sawDiscriminator {
		var sc StyleComponent
		if err := json.Unmarshal(data, &sc); err == nil {
			return &sc, nil
		}
	}

	return nil, &errors.UnmarshalError{Type: "Component", Data: data, Reason: "no matching variant"}
}

// Clone deep-copies a component tree by serializing it and decoding the
// result through the variant dispatcher. The copy shares no storage with
// the original: child lists come back owned, so mutating either tree
// never affects the other.
func Clone(c Component) (Component, error) {
	data, err := model.ToJSON[Component](c)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// decodeYAMLComponent dispatches a YAML mapping to the matching variant,
// applying the same ordered discriminator probe as Decode.
func decodeYAMLComponent(node *yaml.Node) (Component, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &errors.UnmarshalError{Type: "Component", Data: []byte(node.Value), Reason: "not a mapping"}
	}

	sawDiscriminator := false
	for _, probe := range variantProbes {
		if !yamlHasKey(node, probe.key) {
			continue
		}
		sawDiscriminator = true

		c := probe.make()
		if err := node.Decode(c); err == nil {
			return c, nil
		}
	}

	if !sawDiscriminator {
		var sc StyleComponent
		if err := node.Decode(&sc); err == nil {
			return &sc, nil
		}
	}

	return nil, &errors.UnmarshalError{Type: "Component", Data: []byte(node.Value), Reason: "no matching variant"}
}

// yamlHasKey reports whether a mapping node carries the given scalar key.
func yamlHasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// componentString renders a component as its JSON wire form for String
// methods, falling back to a type label when the component is invalid.
func componentString(c Component) string {
	data, err := json.Marshal(c)
	if err != nil {
		return c.TypeName() + "(invalid)"
	}
	return string(data)
}
