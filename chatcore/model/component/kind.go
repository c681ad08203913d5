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

import "fmt"

// Kind identifies which variant of the component sum a Component value is.
// Unlike the wire-facing enums, Kind never appears in serialized output;
// the variant is identified on the wire by its discriminator key. Kind
// exists for callers that switch over decoded components without type
// assertions.
type Kind uint8

const (
	// KindText identifies a TextComponent (discriminator "text").
	KindText Kind = iota

	// KindTranslation identifies a TranslationComponent (discriminator
	// "translate").
	KindTranslation

	// KindKeyBind identifies a KeyBindComponent (discriminator "keybind").
	KindKeyBind

	// KindScore identifies a ScoreComponent (discriminator "score").
	KindScore

	// KindSelector identifies a SelectorComponent (discriminator
	// "selector").
	KindSelector

	// KindStyle identifies a StyleComponent, the style-only variant with no
	// discriminator of its own.
	KindStyle
)

// kindNames maps each Kind to its display name, matching the variant's
// discriminator key where one exists.
var kindNames = [...]string{
	KindText:        "text",
	KindTranslation: "translate",
	KindKeyBind:     "keybind",
	KindScore:       "score",
	KindSelector:    "selector",
	KindStyle:       "style",
}

// String returns the display name of the kind, matching the variant's
// discriminator key where one exists ("style" has none). Values outside
// the known set render as "Kind(n)".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether this Kind is one of the six known variants.
func (k Kind) Valid() bool {
	return k <= KindStyle
}
