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

package component_test

import (
	"testing"

	"craftwire.dev/chatwire/chatcore/model/color"
	"craftwire.dev/chatwire/chatcore/model/component"
	"craftwire.dev/chatwire/chatcore/model/identifier"
)

func TestBase_SetDecoration(t *testing.T) {
	c := component.NewText("styled")

	if err := c.SetDecoration(component.DecorationBold, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	if err := c.SetDecoration(component.DecorationItalic, false); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}

	if got := c.Decoration(component.DecorationBold); got == nil || !*got {
		t.Error("bold not set to true")
	}
	if got := c.Decoration(component.DecorationItalic); got == nil || *got {
		t.Error("italic not set to false")
	}
	if got := c.Decoration(component.DecorationUnderlined); got != nil {
		t.Error("untouched attribute is no longer inherited")
	}

	if err := c.SetDecoration(component.Decoration(9), true); err == nil {
		t.Error("SetDecoration() = nil error for an unknown selector")
	}
}

func TestBase_StyleMutators(t *testing.T) {
	c := component.NewText("styled")

	c.SetColor(color.FromDefault(color.Gold))
	font, err := identifier.Parse("minecraft:uniform")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c.SetFont(font)
	c.SetInsertion("/tp 0 0 0")
	c.OnClick(component.RunCommand("/help"))
	c.OnHover(component.ShowTextString("tooltip"))

	env := c.Envelope()
	if env.Color == nil || env.Color.String() != "gold" {
		t.Error("color not applied")
	}
	if env.Font == nil || env.Font.Full() != "minecraft:uniform" {
		t.Error("font not applied")
	}
	if env.Insertion == nil || *env.Insertion != "/tp 0 0 0" {
		t.Error("insertion not applied")
	}
	if env.ClickEvent == nil || env.ClickEvent.Action() != component.ClickRunCommand {
		t.Error("click event not applied")
	}
	if env.HoverEvent == nil || env.HoverEvent.Action() != component.HoverShowText {
		t.Error("hover event not applied")
	}
}

func TestBase_ResetStyle(t *testing.T) {
	c := component.NewText("reset me")
	if err := c.SetDecoration(component.DecorationBold, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	c.SetColor(color.FromDefault(color.Red))

	c.ResetStyle()

	env := c.Envelope()
	for d := component.DecorationObfuscated; d <= component.DecorationItalic; d++ {
		got := env.Decoration(d)
		if got == nil || *got {
			t.Errorf("attribute %v not explicitly false after ResetStyle", d)
		}
	}
	dc, ok := env.Color.AsDefault()
	if env.Color == nil || !ok || dc != color.Reset {
		t.Error("color not set to reset")
	}

	// Each attribute has its own pointer; flipping one must not affect the
	// others.
	if err := c.SetDecoration(component.DecorationBold, true); err != nil {
		t.Fatalf("SetDecoration() error = %v", err)
	}
	if got := env.Decoration(component.DecorationItalic); got == nil || *got {
		t.Error("mutating bold after ResetStyle affected italic")
	}
}

func TestBase_AddExtraNeverMutatesBorrowedStorage(t *testing.T) {
	borrowed := []component.Component{component.NewText("child")}

	parent := component.NewText("parent")
	parent.Extra = component.Wrap(borrowed)

	parent.AddExtra(component.NewText("new child"))

	if len(borrowed) != 1 {
		t.Errorf("borrowed slice length = %d, AddExtra leaked into the source", len(borrowed))
	}
	if got := len(parent.Extras()); got != 2 {
		t.Errorf("Extras() len = %d, want 2", got)
	}
}

func TestBase_ValidateRejectsBadNestedValues(t *testing.T) {
	parent := component.NewText("parent")
	parent.AddExtra(component.NewScore("", "kills"))

	if err := parent.Validate(); err == nil {
		t.Error("Validate() = nil error for an invalid child")
	}
}

func TestBase_IsZero(t *testing.T) {
	c := component.NewText("")
	if !c.IsZero() {
		t.Error("empty text component does not report IsZero")
	}

	c.SetInsertion("x")
	if c.IsZero() {
		t.Error("component with an insertion reports IsZero")
	}
}
