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
	"strconv"
	"strings"

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"gopkg.in/yaml.v3"
)

// HoverAction identifies what is shown when a player hovers over a
// component carrying a HoverEvent.
//
// This type implements the model.Model interface. The zero value
// (HoverShowText) is a valid action. JSON and YAML serialization uses the
// snake_case wire names.
type HoverAction uint8

const (
	// HoverShowText shows a tooltip. The payload is either a full component
	// object or a plain string.
	HoverShowText HoverAction = iota

	// HoverShowItem shows an item tooltip. The payload is the item's
	// serialized form as a string.
	HoverShowItem

	// HoverShowEntity shows an entity tooltip. The payload is the entity's
	// serialized form as a string.
	HoverShowEntity
)

// hoverActionNames maps each HoverAction to its wire name.
var hoverActionNames = [...]string{
	HoverShowText:   "show_text",
	HoverShowItem:   "show_item",
	HoverShowEntity: "show_entity",
}

// ParseHoverAction parses a string into a validated HoverAction value. The
// input is trimmed and lowercased, then matched against the wire names.
// Unknown names fail with a ParseError.
func ParseHoverAction(s string) (HoverAction, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for a, name := range hoverActionNames {
		if normalized == name {
			return HoverAction(a), nil
		}
	}

	return HoverShowText, &errors.ParseError{Type: "HoverAction", Value: s}
}

// Compile-time assertion that HoverAction implements model.Model.
var _ model.Model = (*HoverAction)(nil)

// String returns the wire name of the action. Values outside the known set
// render as "HoverAction(n)".
func (a HoverAction) String() string {
	if a.Validate() != nil {
		return fmt.Sprintf("HoverAction(%d)", uint8(a))
	}
	return hoverActionNames[a]
}

// Redacted returns the same string representation as String. Action names
// carry no player content.
func (a HoverAction) Redacted() string {
	return a.String()
}

// TypeName returns "HoverAction".
func (a HoverAction) TypeName() string {
	return "HoverAction"
}

// IsZero reports whether this HoverAction is the zero value,
// HoverShowText. The zero value is a valid action.
func (a HoverAction) IsZero() bool {
	return a == HoverShowText
}

// Equal reports whether this HoverAction has the same numeric value as
// another.
func (a HoverAction) Equal(other HoverAction) bool {
	return a == other
}

// Validate checks whether this HoverAction is one of the known actions.
func (a HoverAction) Validate() error {
	if a > HoverShowEntity {
		return &errors.ValidationError{
			Type:   "HoverAction",
			Reason: "value outside the action set",
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON serializes this HoverAction to a JSON string holding its
// wire name.
func (a HoverAction) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "HoverAction", Value: int(a)}
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON deserializes a HoverAction from a JSON string via
// ParseHoverAction. On failure the receiver is not modified.
func (a *HoverAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "HoverAction", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseHoverAction(str)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, using the wire name.
func (a HoverAction) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "HoverAction", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *HoverAction) UnmarshalText(text []byte) error {
	parsed, err := ParseHoverAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML serializes this HoverAction to a YAML string holding its
// wire name.
func (a HoverAction) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "HoverAction", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML deserializes a HoverAction from a YAML scalar.
func (a *HoverAction) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "HoverAction", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseHoverAction(str)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// HoverEvent describes the tooltip shown when a player hovers over the
// component carrying it. The wire form is a two-field object:
//
//	{"action": "show_text", "value": {"text": "details"}}
//	{"action": "show_item", "value": "minecraft:diamond_sword"}
//
// The show_text payload is either a full component object or a plain
// string; show_item and show_entity payloads are strings. The action field
// is the explicit discriminator.
//
// This type implements the model.Model interface. A HoverEvent is built
// through one of the per-action constructors (ShowText, ShowTextString,
// ShowItem, ShowEntity) and is immutable thereafter.
//
// The zero value is a show_text event with an empty string payload; it is
// valid but meaningless, and IsZero reports it.
type HoverEvent struct {
	action HoverAction

	// text holds the component payload of a show_text event. It is nil
	// when the payload is a plain string.
	text  Component
	value string
}

// ShowText builds a HoverEvent whose tooltip is a full component, styling
// and children included.
func ShowText(c Component) HoverEvent {
	return HoverEvent{action: HoverShowText, text: c}
}

// ShowTextString builds a HoverEvent whose tooltip is a plain string.
func ShowTextString(s string) HoverEvent {
	return HoverEvent{action: HoverShowText, value: s}
}

// ShowItem builds a HoverEvent showing an item tooltip.
func ShowItem(item string) HoverEvent {
	return HoverEvent{action: HoverShowItem, value: item}
}

// ShowEntity builds a HoverEvent showing an entity tooltip.
func ShowEntity(entity string) HoverEvent {
	return HoverEvent{action: HoverShowEntity, value: entity}
}

// Action returns the event's action discriminator.
func (e HoverEvent) Action() HoverAction {
	return e.action
}

// Text returns the component payload and true for show_text events built
// over a component, or nil and false otherwise.
func (e HoverEvent) Text() (Component, bool) {
	if e.text != nil {
		return e.text, true
	}
	return nil, false
}

// Value returns the string payload. For show_text events carrying a
// component, Value returns the empty string; use Text instead.
func (e HoverEvent) Value() string {
	return e.value
}

// Compile-time assertion that HoverEvent implements model.Model.
var _ model.Model = (*HoverEvent)(nil)

// String returns a full representation including the payload. Use Redacted
// for production logging.
func (e HoverEvent) String() string {
	if e.text != nil {
		return "HoverEvent{action:" + e.action.String() + ", text:" + e.text.String() + "}"
	}
	return "HoverEvent{action:" + e.action.String() + ", value:" + e.value + "}"
}

// Redacted summarizes the payload instead of echoing it; tooltips carry
// player-visible content.
func (e HoverEvent) Redacted() string {
	if e.text != nil {
		return "HoverEvent{action:" + e.action.String() + ", text:" + e.text.Redacted() + "}"
	}
	return "HoverEvent{action:" + e.action.String() + ", value:" + strconv.Itoa(len(e.value)) + " chars}"
}

// TypeName returns "HoverEvent".
func (e HoverEvent) TypeName() string {
	return "HoverEvent"
}

// IsZero reports whether this HoverEvent is the zero value: a show_text
// action with an empty string payload and no component.
func (e HoverEvent) IsZero() bool {
	return e.action == HoverShowText && e.text == nil && e.value == ""
}

// Equal reports whether this HoverEvent represents the same tooltip as
// another. Component payloads compare structurally via model.Equal.
func (e HoverEvent) Equal(other HoverEvent) bool {
	if e.action != other.action || e.value != other.value {
		return false
	}
	if (e.text == nil) != (other.text == nil) {
		return false
	}
	if e.text == nil {
		return true
	}
	return model.Equal[model.Model](e.text, other.text)
}

// Validate checks that the action is within the known set, that only
// show_text events carry a component payload, and that any component
// payload is itself valid.
func (e HoverEvent) Validate() error {
	if err := e.action.Validate(); err != nil {
		return err
	}
	if e.text != nil {
		if e.action != HoverShowText {
			return &errors.ValidationError{
				Type:   "HoverEvent",
				Reason: "component payload requires the show_text action",
				Value:  e.action.String(),
			}
		}
		if err := e.text.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON serializes this HoverEvent to its two-field wire object. A
// show_text event built over a component emits the component object as the
// payload; every other form emits a string.
func (e HoverEvent) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	if e.text != nil {
		return json.Marshal(struct {
			Action HoverAction `json:"action"`
			Value  Component   `json:"value"`
		}{Action: e.action, Value: e.text})
	}
	return json.Marshal(struct {
		Action HoverAction `json:"action"`
		Value  string      `json:"value"`
	}{Action: e.action, Value: e.value})
}

// UnmarshalJSON deserializes a HoverEvent from its wire object. A
// show_text payload that is a JSON object is decoded as a component
// through the variant dispatcher; string payloads are stored as-is. On
// failure the receiver is not modified.
func (e *HoverEvent) UnmarshalJSON(data []byte) error {
	var aux struct {
		Action HoverAction     `json:"action"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "HoverEvent", Data: data, Reason: err.Error()}
	}

	if aux.Action == HoverShowText && len(aux.Value) > 0 && aux.Value[0] == '{' {
		c, err := Decode(aux.Value)
		if err != nil {
			return err
		}
		*e = HoverEvent{action: HoverShowText, text: c}
		return nil
	}

	var value string
	if err := json.Unmarshal(aux.Value, &value); err != nil {
		return &errors.UnmarshalError{Type: "HoverEvent", Data: data, Reason: "value is not a string"}
	}
	*e = HoverEvent{action: aux.Action, value: value}
	return nil
}

// MarshalYAML serializes this HoverEvent to the same two-field shape as
// the JSON form.
func (e HoverEvent) MarshalYAML() (any, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	if e.text != nil {
		return struct {
			Action HoverAction `yaml:"action"`
			Value  Component   `yaml:"value"`
		}{Action: e.action, Value: e.text}, nil
	}
	return struct {
		Action HoverAction `yaml:"action"`
		Value  string      `yaml:"value"`
	}{Action: e.action, Value: e.value}, nil
}

// UnmarshalYAML deserializes a HoverEvent from a YAML mapping. A show_text
// payload that is itself a mapping is decoded as a component. Semantics
// mirror UnmarshalJSON.
func (e *HoverEvent) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Action HoverAction `yaml:"action"`
		Value  yaml.Node   `yaml:"value"`
	}
	if err := node.Decode(&aux); err != nil {
		return &errors.UnmarshalError{Type: "HoverEvent", Data: []byte(node.Value), Reason: err.Error()}
	}

	if aux.Action == HoverShowText && aux.Value.Kind == yaml.MappingNode {
		c, err := decodeYAMLComponent(&aux.Value)
		if err != nil {
			return err
		}
		*e = HoverEvent{action: HoverShowText, text: c}
		return nil
	}

	var value string
	if err := aux.Value.Decode(&value); err != nil {
		return &errors.UnmarshalError{Type: "HoverEvent", Data: []byte(aux.Value.Value), Reason: "value is not a string"}
	}
	*e = HoverEvent{action: aux.Action, value: value}
	return nil
}
