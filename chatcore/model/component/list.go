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

	"craftwire.dev/chatwire/chatcore/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// List is an ordered sequence of components with copy-on-write storage.
// It backs the envelope's Extra children and the translation variant's
// With arguments.
//
// A List built with Wrap aliases the caller's slice without copying, so
// building a component over an existing slice is free. The first mutation
// (Append) materializes an owned copy of the slice exactly once; further
// mutations operate in place. Read accessors (Len, Get, All) never copy.
// Materialization is shallow: the slice is copied, the component pointers
// in it are shared.
//
// The zero value is the empty list. It is valid, reports IsZero, and is
// omitted from wire output wherever a List appears as an optional field.
//
// List implements the model.Model contract's methods. Lists decoded from
// JSON or YAML always own their storage.
type List struct {
	items []Component
	owned bool
}

// Wrap builds a List over the caller's slice without copying. The List
// aliases the slice until the first mutation; callers that keep mutating
// the original slice see those changes reflected until then, and never
// after.
func Wrap(items []Component) List {
	return List{items: items}
}

// Of builds an owned List holding the given components. The variadic
// slice is copied, so the List never aliases caller storage.
func Of(items ...Component) List {
	owned := make([]Component, len(items))
	copy(owned, items)
	return List{items: owned, owned: true}
}

// ensureOwned materializes an owned copy of borrowed storage. The copy
// happens at most once per List; it is shallow, sharing the component
// pointers.
func (l *List) ensureOwned() {
	if l.owned {
		return
	}
	items := make([]Component, len(l.items))
	copy(items, l.items)
	l.items = items
	l.owned = true
}

// Append adds components to the end of the list, materializing an owned
// copy of borrowed storage first. The borrowed source slice is never
// modified.
func (l *List) Append(items ...Component) {
	l.ensureOwned()
	l.items = append(l.items, items...)
}

// Len returns the number of components in the list.
func (l List) Len() int {
	return len(l.items)
}

// Get returns the component at index i. It panics if i is out of range,
// matching slice indexing semantics.
func (l List) Get(i int) Component {
	return l.items[i]
}

// All returns the underlying slice as a view without copying. Callers MUST
// NOT modify the returned slice; use Append for mutation so ownership is
// tracked.
func (l List) All() []Component {
	return l.items
}

// Owned reports whether the list owns its storage. A freshly wrapped list
// reports false until its first mutation.
func (l List) Owned() bool {
	return l.owned
}

// String returns the JSON rendering of the list, or a length summary if a
// component fails to marshal.
func (l List) String() string {
	data, err := json.Marshal(l.items)
	if err != nil {
		return "List{" + strconv.Itoa(len(l.items)) + " components}"
	}
	return string(data)
}

// Redacted summarizes the list by element count; the elements carry player
// content.
func (l List) Redacted() string {
	return "List{" + strconv.Itoa(len(l.items)) + " components}"
}

// TypeName returns "List".
func (l List) TypeName() string {
	return "List"
}

// IsZero reports whether the list is empty. This drives wire omission:
// an empty child list is never emitted.
func (l List) IsZero() bool {
	return len(l.items) == 0
}

// Equal reports whether this List holds the same components in the same
// order as another, compared structurally through their JSON forms.
// Ownership state is ignored: a borrowed list and an owned copy of the
// same components are equal.
func (l List) Equal(other List) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		a, errA := json.Marshal(l.items[i])
		b, errB := json.Marshal(other.items[i])
		if errA != nil || errB != nil || string(a) != string(b) {
			return false
		}
	}
	return true
}

// Validate checks every component in the list, aggregating all failures
// via multierr rather than stopping at the first. Each failure names the
// offending index.
func (l List) Validate() error {
	var err error

	for i, c := range l.items {
		if c == nil {
			err = multierr.Append(err, &errors.ValidationError{
				Type:   "List",
				Reason: "nil component at index " + strconv.Itoa(i),
			})
			continue
		}
		if verr := c.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("component[%d] (%s): %w", i, c.TypeName(), verr))
		}
	}

	return err
}

// MarshalJSON serializes the list as a JSON array of component objects.
// The list is validated first.
func (l List) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON deserializes a JSON array into an owned List, dispatching
// each element through the component variant decoder. On failure the
// receiver is not modified.
func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errors.UnmarshalError{Type: "List", Data: data, Reason: err.Error()}
	}

	items := make([]Component, 0, len(raw))
	for i, elem := range raw {
		c, err := Decode(elem)
		if err != nil {
			return fmt.Errorf("component[%d]: %w", i, err)
		}
		items = append(items, c)
	}

	*l = List{items: items, owned: true}
	return nil
}

// MarshalYAML serializes the list as a YAML sequence of component
// mappings. The list is validated first.
func (l List) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	return l.items, nil
}

// UnmarshalYAML deserializes a YAML sequence into an owned List,
// dispatching each element through the component variant decoder.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return &errors.UnmarshalError{Type: "List", Data: []byte(node.Value), Reason: "not a sequence"}
	}

	items := make([]Component, 0, len(node.Content))
	for i, elem := range node.Content {
		c, err := decodeYAMLComponent(elem)
		if err != nil {
			return fmt.Errorf("component[%d]: %w", i, err)
		}
		items = append(items, c)
	}

	*l = List{items: items, owned: true}
	return nil
}
