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

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"craftwire.dev/chatwire/chatcore/errors"
)

// ScoreComponent shows a scoreboard score. Unlike the other variants its
// discriminator payload is a nested object, the Score reference:
//
//	{"score": {"name": "Steve", "objective": "kills"}}
//
// The score itself is resolved server-side; an unresolved component
// carries no value field.
type ScoreComponent struct {
	// Score references the holder, objective, and optionally the resolved
	// value.
	Score Score `json:"score" yaml:"score"`

	Base `yaml:",inline"`
}

// NewScore builds a score component for a named holder and objective.
//
// Example usage:
//
//	c := component.NewScore("Steve", "kills")
func NewScore(name, objective string) *ScoreComponent {
	return &ScoreComponent{Score: Score{Name: name, Objective: objective}}
}

// NewEntityScore builds a score component whose holder is an entity
// identified by UUID.
func NewEntityScore(id uuid.UUID, objective string) *ScoreComponent {
	return &ScoreComponent{Score: NewScoreForEntity(id, objective)}
}

// Compile-time assertion that ScoreComponent implements Component.
var _ Component = (*ScoreComponent)(nil)

func (s ScoreComponent) isComponent() {}

// Kind returns KindScore.
func (s ScoreComponent) Kind() Kind {
	return KindScore
}

// TypeName returns "ScoreComponent".
func (s ScoreComponent) TypeName() string {
	return "ScoreComponent"
}

// String returns the component's JSON wire form. Use Redacted for
// production logging; the holder name may be a player name.
func (s ScoreComponent) String() string {
	return componentString(&s)
}

// Redacted delegates to the score reference's own redaction, which masks
// the holder name.
func (s ScoreComponent) Redacted() string {
	return fmt.Sprintf("ScoreComponent{%s, extra:%d}", s.Score.Redacted(), s.Extra.Len())
}

// IsZero reports whether the score reference is unset and the envelope is
// empty.
func (s ScoreComponent) IsZero() bool {
	return s.Score.IsZero() && s.Base.IsZero()
}

// Validate checks the score reference and the style envelope.
func (s ScoreComponent) Validate() error {
	if err := s.Score.Validate(); err != nil {
		return err
	}
	return s.Base.Validate()
}

// MarshalJSON serializes the component as a flat object: the nested
// "score" object first, then the envelope fields.
func (s ScoreComponent) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias ScoreComponent
	return json.Marshal((alias)(s))
}

// UnmarshalJSON deserializes the flat wire object. The "score" key must be
// present with a well-formed score reference.
func (s *ScoreComponent) UnmarshalJSON(data []byte) error {
	type alias ScoreComponent
	aux := struct {
		Score *Score `json:"score"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return &errors.UnmarshalError{Type: "ScoreComponent", Data: data, Reason: err.Error()}
	}
	if aux.Score == nil {
		return &errors.UnmarshalError{Type: "ScoreComponent", Data: data, Reason: `missing "score" discriminator`}
	}

	s.Score = *aux.Score
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}

// MarshalYAML serializes the component as a flat mapping mirroring the
// JSON form.
func (s ScoreComponent) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias ScoreComponent
	return (alias)(s), nil
}

// UnmarshalYAML deserializes a flat YAML mapping. The "score" key must be
// present.
func (s *ScoreComponent) UnmarshalYAML(node *yaml.Node) error {
	if !yamlHasKey(node, "score") {
		return &errors.UnmarshalError{Type: "ScoreComponent", Data: []byte(node.Value), Reason: `missing "score" discriminator`}
	}

	type alias ScoreComponent
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "ScoreComponent", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	return nil
}
