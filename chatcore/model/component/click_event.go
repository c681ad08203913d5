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

// ClickAction identifies what happens when a player clicks a component
// carrying a ClickEvent.
//
// This type implements the model.Model interface. The zero value
// (ClickOpenURL) is a valid action. JSON and YAML serialization uses the
// snake_case wire names.
type ClickAction uint8

const (
	// ClickOpenURL opens the event's value as a URL in the player's
	// browser.
	ClickOpenURL ClickAction = iota

	// ClickRunCommand executes the event's value as a chat command on the
	// player's behalf.
	ClickRunCommand

	// ClickSuggestCommand places the event's value into the player's chat
	// input without sending it.
	ClickSuggestCommand

	// ClickChangePage turns a book to the page given by the event's numeric
	// payload. This is the only action whose payload is a number rather
	// than a string.
	ClickChangePage

	// ClickCopyToClipboard copies the event's value to the player's
	// clipboard.
	ClickCopyToClipboard
)

// clickActionNames maps each ClickAction to its wire name.
var clickActionNames = [...]string{
	ClickOpenURL:         "open_url",
	ClickRunCommand:      "run_command",
	ClickSuggestCommand:  "suggest_command",
	ClickChangePage:      "change_page",
	ClickCopyToClipboard: "copy_to_clipboard",
}

// ParseClickAction parses a string into a validated ClickAction value. The
// input is trimmed and lowercased, then matched against the wire names.
// Unknown names fail with a ParseError.
func ParseClickAction(s string) (ClickAction, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for a, name := range clickActionNames {
		if normalized == name {
			return ClickAction(a), nil
		}
	}

	return ClickOpenURL, &errors.ParseError{Type: "ClickAction", Value: s}
}

// Compile-time assertion that ClickAction implements model.Model.
var _ model.Model = (*ClickAction)(nil)

// String returns the wire name of the action. Values outside the known set
// render as "ClickAction(n)".
func (a ClickAction) String() string {
	if a.Validate() != nil {
		return fmt.Sprintf("ClickAction(%d)", uint8(a))
	}
	return clickActionNames[a]
}

// Redacted returns the same string representation as String. Action names
// carry no player content.
func (a ClickAction) Redacted() string {
	return a.String()
}

// TypeName returns "ClickAction".
func (a ClickAction) TypeName() string {
	return "ClickAction"
}

// IsZero reports whether this ClickAction is the zero value, ClickOpenURL.
// The zero value is a valid action.
func (a ClickAction) IsZero() bool {
	return a == ClickOpenURL
}

// Equal reports whether this ClickAction has the same numeric value as
// another.
func (a ClickAction) Equal(other ClickAction) bool {
	return a == other
}

// Validate checks whether this ClickAction is one of the known actions.
func (a ClickAction) Validate() error {
	if a > ClickCopyToClipboard {
		return &errors.ValidationError{
			Type:   "ClickAction",
			Reason: "value outside the action set",
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON serializes this ClickAction to a JSON string holding its
// wire name.
func (a ClickAction) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "ClickAction", Value: int(a)}
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON deserializes a ClickAction from a JSON string via
// ParseClickAction. On failure the receiver is not modified.
func (a *ClickAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "ClickAction", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseClickAction(str)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, using the wire name.
func (a ClickAction) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "ClickAction", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ClickAction) UnmarshalText(text []byte) error {
	parsed, err := ParseClickAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML serializes this ClickAction to a YAML string holding its
// wire name.
func (a ClickAction) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "ClickAction", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML deserializes a ClickAction from a YAML scalar.
func (a *ClickAction) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ClickAction", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseClickAction(str)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// ClickEvent describes the action taken when a player clicks the component
// carrying it. The wire form is a two-field object:
//
//	{"action": "run_command", "value": "/help"}
//
// The payload type depends on the action: change_page carries a number (the
// target page), every other action carries a string. The action field is
// the explicit discriminator; payload shape alone never selects an action.
//
// This type implements the model.Model interface. A ClickEvent is built
// through one of the per-action constructors (OpenURL, RunCommand,
// SuggestCommand, ChangePage, CopyToClipboard) and is immutable thereafter.
//
// The zero value is an open_url event with an empty URL; it is valid but
// meaningless, and IsZero reports it.
type ClickEvent struct {
	action ClickAction
	value  string
	page   uint
}

// OpenURL builds a ClickEvent that opens the given URL.
func OpenURL(url string) ClickEvent {
	return ClickEvent{action: ClickOpenURL, value: url}
}

// RunCommand builds a ClickEvent that executes the given chat command.
func RunCommand(command string) ClickEvent {
	return ClickEvent{action: ClickRunCommand, value: command}
}

// SuggestCommand builds a ClickEvent that places the given command into the
// player's chat input.
func SuggestCommand(command string) ClickEvent {
	return ClickEvent{action: ClickSuggestCommand, value: command}
}

// ChangePage builds a ClickEvent that turns a book to the given page.
func ChangePage(page uint) ClickEvent {
	return ClickEvent{action: ClickChangePage, page: page}
}

// CopyToClipboard builds a ClickEvent that copies the given text to the
// player's clipboard.
func CopyToClipboard(text string) ClickEvent {
	return ClickEvent{action: ClickCopyToClipboard, value: text}
}

// Action returns the event's action discriminator.
func (e ClickEvent) Action() ClickAction {
	return e.action
}

// Value returns the string payload. For change_page events, which carry a
// numeric payload instead, Value returns the page rendered in decimal.
func (e ClickEvent) Value() string {
	if e.action == ClickChangePage {
		return strconv.FormatUint(uint64(e.page), 10)
	}
	return e.value
}

// Page returns the numeric payload and true for change_page events, or
// zero and false for every other action.
func (e ClickEvent) Page() (uint, bool) {
	if e.action == ClickChangePage {
		return e.page, true
	}
	return 0, false
}

// Compile-time assertion that ClickEvent implements model.Model.
var _ model.Model = (*ClickEvent)(nil)

// String returns a full representation including the payload. Use Redacted
// for production logging; the payload may be a player-authored command.
func (e ClickEvent) String() string {
	return "ClickEvent{action:" + e.action.String() + ", value:" + e.Value() + "}"
}

// Redacted summarizes the payload by length instead of echoing it;
// commands and URLs may embed player content.
func (e ClickEvent) Redacted() string {
	return "ClickEvent{action:" + e.action.String() + ", value:" + strconv.Itoa(len(e.Value())) + " chars}"
}

// TypeName returns "ClickEvent".
func (e ClickEvent) TypeName() string {
	return "ClickEvent"
}

// IsZero reports whether this ClickEvent is the zero value: an open_url
// action with an empty payload.
func (e ClickEvent) IsZero() bool {
	return e == ClickEvent{}
}

// Equal reports whether this ClickEvent has the same action and payload as
// another.
func (e ClickEvent) Equal(other ClickEvent) bool {
	return e == other
}

// Validate checks that the action is within the known set.
func (e ClickEvent) Validate() error {
	return e.action.Validate()
}

// clickEventWire is the string-payload wire shape of a ClickEvent.
type clickEventWire struct {
	Action ClickAction `json:"action" yaml:"action"`
	Value  string      `json:"value" yaml:"value"`
}

// clickEventPageWire is the numeric-payload wire shape used by change_page.
type clickEventPageWire struct {
	Action ClickAction `json:"action" yaml:"action"`
	Value  uint        `json:"value" yaml:"value"`
}

// MarshalJSON serializes this ClickEvent to its two-field wire object. The
// payload is numeric for change_page and a string otherwise.
func (e ClickEvent) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	if e.action == ClickChangePage {
		return json.Marshal(clickEventPageWire{Action: e.action, Value: e.page})
	}
	return json.Marshal(clickEventWire{Action: e.action, Value: e.value})
}

// UnmarshalJSON deserializes a ClickEvent from its wire object. The action
// field selects the payload type: change_page requires a non-negative
// number, every other action requires a string. On failure the receiver is
// not modified.
func (e *ClickEvent) UnmarshalJSON(data []byte) error {
	var aux struct {
		Action ClickAction     `json:"action"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "ClickEvent", Data: data, Reason: err.Error()}
	}

	if aux.Action == ClickChangePage {
		var page uint
		if err := json.Unmarshal(aux.Value, &page); err != nil {
			return &errors.UnmarshalError{Type: "ClickEvent", Data: data, Reason: "change_page value is not a non-negative number"}
		}
		*e = ClickEvent{action: ClickChangePage, page: page}
		return nil
	}

	var value string
	if err := json.Unmarshal(aux.Value, &value); err != nil {
		return &errors.UnmarshalError{Type: "ClickEvent", Data: data, Reason: "value is not a string"}
	}
	*e = ClickEvent{action: aux.Action, value: value}
	return nil
}

// MarshalYAML serializes this ClickEvent to the same two-field shape as
// the JSON form.
func (e ClickEvent) MarshalYAML() (any, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	if e.action == ClickChangePage {
		return clickEventPageWire{Action: e.action, Value: e.page}, nil
	}
	return clickEventWire{Action: e.action, Value: e.value}, nil
}

// UnmarshalYAML deserializes a ClickEvent from a YAML mapping. Semantics
// mirror UnmarshalJSON.
func (e *ClickEvent) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Action ClickAction `yaml:"action"`
		Value  yaml.Node   `yaml:"value"`
	}
	if err := node.Decode(&aux); err != nil {
		return &errors.UnmarshalError{Type: "ClickEvent", Data: []byte(node.Value), Reason: err.Error()}
	}

	if aux.Action == ClickChangePage {
		var page uint
		if err := aux.Value.Decode(&page); err != nil {
			return &errors.UnmarshalError{Type: "ClickEvent", Data: []byte(aux.Value.Value), Reason: "change_page value is not a non-negative number"}
		}
		*e = ClickEvent{action: ClickChangePage, page: page}
		return nil
	}

	var value string
	if err := aux.Value.Decode(&value); err != nil {
		return &errors.UnmarshalError{Type: "ClickEvent", Data: []byte(aux.Value.Value), Reason: "value is not a string"}
	}
	*e = ClickEvent{action: aux.Action, value: value}
	return nil
}
