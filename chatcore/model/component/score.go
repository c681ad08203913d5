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

	"craftwire.dev/chatwire/chatcore/errors"
	"craftwire.dev/chatwire/chatcore/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Score is the scoreboard reference carried by a ScoreComponent: whose
// score to show (Name), on which objective (Objective), and optionally a
// resolved value (Value) filled in by the server before display.
//
// Name identifies the score holder: a player name, an entity UUID in its
// canonical string form, or the wildcard "*" meaning the viewing player.
// Value is any JSON value and is omitted from the wire when nil; when a
// payload round-trips through JSON, numeric values come back as float64
// per encoding/json's default decoding.
//
// This type implements the model.Model interface. Name and Objective are
// required; a Score missing either fails validation.
type Score struct {
	// Name is the score holder: a player name, an entity UUID string, or
	// the wildcard "*".
	Name string `json:"name" yaml:"name"`

	// Objective is the scoreboard objective the score lives under.
	Objective string `json:"objective" yaml:"objective"`

	// Value optionally carries the resolved score, filled in by the server
	// before the component reaches a client. Nil means unresolved, and nil
	// is omitted from the wire.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewScoreForEntity builds a Score whose holder is an entity identified by
// UUID. The UUID is stored in its canonical string form.
func NewScoreForEntity(id uuid.UUID, objective string) Score {
	return Score{Name: id.String(), Objective: objective}
}

// NameUUID parses the holder name as an entity UUID. It returns the UUID
// and true when Name is a well-formed UUID string, or the zero UUID and
// false for player names and the wildcard.
func (s Score) NameUUID() (uuid.UUID, bool) {
	id, err := uuid.Parse(s.Name)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// Compile-time assertion that Score implements model.Model.
var _ model.Model = (*Score)(nil)

// String returns a full representation of the score reference.
func (s Score) String() string {
	if s.Value != nil {
		return fmt.Sprintf("Score{name:%s, objective:%s, value:%v}", s.Name, s.Objective, s.Value)
	}
	return "Score{name:" + s.Name + ", objective:" + s.Objective + "}"
}

// Redacted masks the holder name; it may be a player name.
func (s Score) Redacted() string {
	return "Score{name:<redacted>, objective:" + s.Objective + "}"
}

// TypeName returns "Score".
func (s Score) TypeName() string {
	return "Score"
}

// IsZero reports whether all fields are unset.
func (s Score) IsZero() bool {
	return s.Name == "" && s.Objective == "" && s.Value == nil
}

// Equal reports whether this Score references the same holder, objective
// and resolved value as another. Value comparison goes through the JSON
// form via model.Equal semantics, so an int 5 and a float64 5 resolved
// from the wire compare equal.
func (s Score) Equal(other Score) bool {
	return model.Equal(s, other)
}

// Validate checks that the holder name and objective are both present.
func (s Score) Validate() error {
	if s.Name == "" {
		return &errors.ValidationError{
			Type:   "Score",
			Field:  "Name",
			Reason: "must not be empty",
		}
	}
	if s.Objective == "" {
		return &errors.ValidationError{
			Type:   "Score",
			Field:  "Objective",
			Reason: "must not be empty",
		}
	}
	return nil
}

// MarshalJSON serializes this Score after validating it. Nil values are
// omitted from the output.
func (s Score) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Score
	return json.Marshal((alias)(s))
}

// UnmarshalJSON deserializes a Score and validates the result.
func (s *Score) UnmarshalJSON(data []byte) error {
	type alias Score
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Score", Data: data, Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes this Score after validating it.
func (s Score) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Score
	return (alias)(s), nil
}

// UnmarshalYAML deserializes a Score from a YAML mapping and validates the
// result.
func (s *Score) UnmarshalYAML(node *yaml.Node) error {
	type alias Score
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Score", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}
