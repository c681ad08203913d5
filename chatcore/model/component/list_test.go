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

	"craftwire.dev/chatwire/chatcore/model"
	"craftwire.dev/chatwire/chatcore/model/component"
	"go.uber.org/multierr"
)

func TestList_WrapAliasesUntilMutation(t *testing.T) {
	borrowed := []component.Component{
		component.NewText("one"),
		component.NewText("two"),
	}

	l := component.Wrap(borrowed)
	if l.Owned() {
		t.Error("Wrap() produced an owned list")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	// First mutation materializes an owned copy; the borrowed slice must
	// keep its length and contents.
	l.Append(component.NewText("three"))
	if !l.Owned() {
		t.Error("Append() did not take ownership")
	}
	if l.Len() != 3 {
		t.Errorf("Len() after Append = %d, want 3", l.Len())
	}
	if len(borrowed) != 2 {
		t.Errorf("borrowed slice length = %d, mutation leaked into the source", len(borrowed))
	}

	// Further appends stay in place without re-copying.
	l.Append(component.NewText("four"))
	if l.Len() != 4 || len(borrowed) != 2 {
		t.Errorf("second Append: list %d, borrowed %d", l.Len(), len(borrowed))
	}
}

func TestList_MaterializationIsShallow(t *testing.T) {
	child := component.NewText("shared")
	borrowed := []component.Component{child}

	l := component.Wrap(borrowed)
	l.Append(component.NewText("new"))

	// The copied slice shares element pointers with the source.
	if l.Get(0) != component.Component(child) {
		t.Error("materialization copied the elements, not just the slice")
	}
}

func TestList_Of(t *testing.T) {
	a, b := component.NewText("a"), component.NewText("b")
	l := component.Of(a, b)

	if !l.Owned() {
		t.Error("Of() produced a borrowed list")
	}
	if l.Len() != 2 || l.Get(0) != component.Component(a) || l.Get(1) != component.Component(b) {
		t.Errorf("Of() = %v", l)
	}
}

func TestList_AllIsAView(t *testing.T) {
	l := component.Of(component.NewText("x"))

	if got := l.All(); len(got) != 1 {
		t.Fatalf("All() len = %d, want 1", len(got))
	}
	if l.Get(0) != l.All()[0] {
		t.Error("All() and Get() disagree")
	}
}

func TestList_Zero(t *testing.T) {
	var l component.List
	if !l.IsZero() {
		t.Error("zero List does not report IsZero")
	}
	if l.Len() != 0 {
		t.Errorf("zero List Len() = %d", l.Len())
	}
	if err := l.Validate(); err != nil {
		t.Errorf("zero List Validate() = %v", err)
	}

	// The zero list is mutable; Append starts an owned list.
	l.Append(component.NewText("first"))
	if l.Len() != 1 || !l.Owned() {
		t.Error("Append on the zero List did not produce an owned singleton")
	}
}

func TestList_Validate_ReportsEveryFailure(t *testing.T) {
	bad1 := component.NewScore("", "kills")  // missing holder
	bad2 := component.NewScore("Steve", "") // missing objective
	l := component.Of(component.NewText("ok"), bad1, bad2)

	err := l.Validate()
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("Validate() produced %d errors, want 2 (err=%v)", got, err)
	}
}

func TestList_Validate_NilElement(t *testing.T) {
	l := component.Wrap([]component.Component{nil})
	if err := l.Validate(); err == nil {
		t.Error("Validate() = nil error for a list holding a nil component")
	}
}

func TestList_JSONRoundTrip(t *testing.T) {
	l := component.Of(
		component.NewText("one"),
		component.NewKeyBind("key.jump"),
	)

	data, err := model.ToJSON(l)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `[{"text":"one"},{"keybind":"key.jump"}]` {
		t.Errorf("ToJSON() = %s", data)
	}

	var back component.List
	if err := model.FromJSON(data, &back); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if !back.Owned() {
		t.Error("unmarshaled List does not own its storage")
	}
	if !back.Equal(l) {
		t.Errorf("round-trip = %v, want %v", back, l)
	}
}

func TestList_Equal_IgnoresOwnership(t *testing.T) {
	items := []component.Component{component.NewText("x")}
	borrowed := component.Wrap(items)
	owned := component.Of(items...)

	if !borrowed.Equal(owned) {
		t.Error("borrowed and owned lists of the same components compare unequal")
	}
}

func TestList_YAMLRoundTrip(t *testing.T) {
	l := component.Of(component.NewText("a"), component.NewSelector("@a"))

	data, err := model.ToYAML(l)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var back component.List
	if err := model.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if !back.Equal(l) {
		t.Errorf("round-trip = %v, want %v", back, l)
	}
}
