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
	"fmt"

	"craftwire.dev/chatwire/chatcore/model/color"
	"craftwire.dev/chatwire/chatcore/model/identifier"
)

// Base is the style envelope shared by every component variant: the five
// boolean attributes, font, color, insertion, the click and hover events,
// and the Extra child list. Each variant embeds Base, so its fields
// flatten into the variant's wire object rather than nesting under a key:
//
//	{"text": "hello", "bold": true, "color": "#ffffff"}
//
// Every field is optional. A nil pointer (or empty list) means "inherit
// from the parent component" and is absent from the wire. Children in
// Extra inherit the parent's style for any field they leave unset.
//
// Base carries the style mutators, which are promoted onto every variant
// through embedding. The mutators require a pointer receiver; they are
// the documented exception to the immutable-value convention of the model
// types. Base deliberately implements none of the marshal interfaces:
// a marshaler on Base would be promoted to the variants and replace their
// flattened encoding.
type Base struct {
	// Bold renders text in bold. Nil inherits the parent's setting.
	Bold *bool `json:"bold,omitempty" yaml:"bold,omitempty"`

	// Italic renders text in italics. Nil inherits the parent's setting.
	Italic *bool `json:"italic,omitempty" yaml:"italic,omitempty"`

	// Underlined renders text underlined. Nil inherits the parent's
	// setting.
	Underlined *bool `json:"underlined,omitempty" yaml:"underlined,omitempty"`

	// Strikethrough renders text struck through. Nil inherits the parent's
	// setting.
	Strikethrough *bool `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`

	// Obfuscated renders text as rapidly cycling glyphs. Nil inherits the
	// parent's setting.
	Obfuscated *bool `json:"obfuscated,omitempty" yaml:"obfuscated,omitempty"`

	// Font names the font resource used to render this component's text.
	// Nil inherits the parent's font.
	Font *identifier.Identifier `json:"font,omitempty" yaml:"font,omitempty"`

	// Color is the text color, named or hex. Nil inherits the parent's
	// color.
	Color *color.Color `json:"color,omitempty" yaml:"color,omitempty"`

	// Insertion is text appended to the player's chat input when the
	// component is shift-clicked. Nil means no insertion.
	Insertion *string `json:"insertion,omitempty" yaml:"insertion,omitempty"`

	// ClickEvent is the action taken when the component is clicked. Nil
	// means no click behavior.
	ClickEvent *ClickEvent `json:"clickEvent,omitempty" yaml:"clickEvent,omitempty"`

	// HoverEvent is the tooltip shown when the component is hovered. Nil
	// means no hover behavior.
	HoverEvent *HoverEvent `json:"hoverEvent,omitempty" yaml:"hoverEvent,omitempty"`

	// Extra holds the child components appended after this component's own
	// content. Children inherit this component's style. An empty list is
	// absent from the wire.
	Extra List `json:"extra,omitzero" yaml:"extra,omitempty"`
}

// SetDecoration sets one of the five boolean style attributes to an
// explicit value. It fails with the selector's ValidationError if d is not
// a known attribute.
func (b *Base) SetDecoration(d Decoration, value bool) error {
	if err := d.Validate(); err != nil {
		return err
	}

	v := value
	switch d {
	case DecorationObfuscated:
		b.Obfuscated = &v
	case DecorationBold:
		b.Bold = &v
	case DecorationStrikethrough:
		b.Strikethrough = &v
	case DecorationUnderlined:
		b.Underlined = &v
	case DecorationItalic:
		b.Italic = &v
	}
	return nil
}

// Decoration returns the current setting of one of the five boolean style
// attributes: nil when the attribute is unset (inherited), otherwise a
// pointer to its explicit value. Unknown selectors return nil.
func (b *Base) Decoration(d Decoration) *bool {
	switch d {
	case DecorationObfuscated:
		return b.Obfuscated
	case DecorationBold:
		return b.Bold
	case DecorationStrikethrough:
		return b.Strikethrough
	case DecorationUnderlined:
		return b.Underlined
	case DecorationItalic:
		return b.Italic
	default:
		return nil
	}
}

// SetColor sets the text color.
func (b *Base) SetColor(c color.Color) {
	b.Color = &c
}

// SetFont sets the font resource.
func (b *Base) SetFont(font identifier.Identifier) {
	b.Font = &font
}

// SetInsertion sets the shift-click insertion text.
func (b *Base) SetInsertion(insertion string) {
	b.Insertion = &insertion
}

// OnClick attaches a click event.
func (b *Base) OnClick(e ClickEvent) {
	b.ClickEvent = &e
}

// OnHover attaches a hover event.
func (b *Base) OnHover(e HoverEvent) {
	b.HoverEvent = &e
}

// AddExtra appends child components. If the child list was built over
// borrowed storage, the first call materializes an owned copy; the
// borrowed source is never modified.
func (b *Base) AddExtra(children ...Component) {
	b.Extra.Append(children...)
}

// Extras returns the child components as a view without copying. Callers
// MUST NOT modify the returned slice; use AddExtra instead.
func (b *Base) Extras() []Component {
	return b.Extra.All()
}

// ResetStyle overrides the whole inheritable style: all five boolean
// attributes are set explicitly to false and the color is set to the reset
// pseudo-color. A component carrying this style renders with the default
// appearance regardless of its parent's styling. Each attribute gets its
// own pointer, so later mutation of one attribute never affects another.
func (b *Base) ResetStyle() {
	for d := DecorationObfuscated; d <= DecorationItalic; d++ {
		// The selector is drawn from the valid range, so the error path is
		// unreachable.
		_ = b.SetDecoration(d, false)
	}
	reset := color.FromDefault(color.Reset)
	b.Color = &reset
}

// Validate checks every set envelope field: the font identifier, the
// color, the click and hover events, and each child in Extra. Unset fields
// are skipped. The first failure is returned.
func (b *Base) Validate() error {
	if b.Font != nil {
		if err := b.Font.Validate(); err != nil {
			return err
		}
	}
	if b.Color != nil {
		if err := b.Color.Validate(); err != nil {
			return err
		}
	}
	if b.ClickEvent != nil {
		if err := b.ClickEvent.Validate(); err != nil {
			return err
		}
	}
	if b.HoverEvent != nil {
		if err := b.HoverEvent.Validate(); err != nil {
			return err
		}
	}
	if err := b.Extra.Validate(); err != nil {
		return fmt.Errorf("invalid extra list: %w", err)
	}
	return nil
}

// IsZero reports whether every envelope field is unset and the child list
// is empty.
func (b *Base) IsZero() bool {
	return b.Bold == nil &&
		b.Italic == nil &&
		b.Underlined == nil &&
		b.Strikethrough == nil &&
		b.Obfuscated == nil &&
		b.Font == nil &&
		b.Color == nil &&
		b.Insertion == nil &&
		b.ClickEvent == nil &&
		b.HoverEvent == nil &&
		b.Extra.IsZero()
}

// Envelope returns the style envelope itself. Through embedding, this
// gives every variant an Envelope method returning its Base, which is how
// generic code reaches a component's styling without switching on the
// variant.
func (b *Base) Envelope() *Base {
	return b
}
