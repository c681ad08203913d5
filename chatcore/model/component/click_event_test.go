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
	"strings"
	"testing"

	"craftwire.dev/chatwire/chatcore/model"
	"craftwire.dev/chatwire/chatcore/model/component"
)

func TestClickEvent_Wire(t *testing.T) {
	tests := []struct {
		name string
		e    component.ClickEvent
		wire string
	}{
		{
			name: "open_url",
			e:    component.OpenURL("https://example.com"),
			wire: `{"action":"open_url","value":"https://example.com"}`,
		},
		{
			name: "run_command",
			e:    component.RunCommand("/help"),
			wire: `{"action":"run_command","value":"/help"}`,
		},
		{
			name: "suggest_command",
			e:    component.SuggestCommand("/msg Steve "),
			wire: `{"action":"suggest_command","value":"/msg Steve "}`,
		},
		{
			name: "change_page carries a number",
			e:    component.ChangePage(100),
			wire: `{"action":"change_page","value":100}`,
		},
		{
			name: "copy_to_clipboard",
			e:    component.CopyToClipboard("coords: 1 2 3"),
			wire: `{"action":"copy_to_clipboard","value":"coords: 1 2 3"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := model.ToJSON(tt.e)
			if err != nil {
				t.Fatalf("ToJSON() error = %v", err)
			}
			if string(data) != tt.wire {
				t.Errorf("ToJSON() = %s, want %s", data, tt.wire)
			}

			var back component.ClickEvent
			if err := model.FromJSON(data, &back); err != nil {
				t.Fatalf("FromJSON() error = %v", err)
			}
			if !back.Equal(tt.e) {
				t.Errorf("round-trip = %v, want %v", back, tt.e)
			}
		})
	}
}

func TestClickEvent_Page(t *testing.T) {
	e := component.ChangePage(7)
	page, ok := e.Page()
	if !ok || page != 7 {
		t.Errorf("Page() = (%d, %v), want (7, true)", page, ok)
	}
	if got := e.Value(); got != "7" {
		t.Errorf("Value() = %q, want %q", got, "7")
	}

	if _, ok := component.RunCommand("/help").Page(); ok {
		t.Error("Page() reports a page for a string-payload action")
	}
}

func TestClickEvent_Unmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", `{"action":"teleport","value":"x"}`},
		{"string payload for change_page", `{"action":"change_page","value":"seven"}`},
		{"negative page", `{"action":"change_page","value":-1}`},
		{"numeric payload for run_command", `{"action":"run_command","value":5}`},
		{"not an object", `"run_command"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e component.ClickEvent
			if err := e.UnmarshalJSON([]byte(tt.data)); err == nil {
				t.Errorf("UnmarshalJSON(%s) = nil error", tt.data)
			}
		})
	}
}

func TestClickEvent_Redacted(t *testing.T) {
	e := component.RunCommand("/msg Steve secret")
	if got := e.Redacted(); strings.Contains(got, "secret") {
		t.Errorf("Redacted() = %q, leaked the command", got)
	}
	if got := e.String(); !strings.Contains(got, "/msg Steve secret") {
		t.Errorf("String() = %q, want full command", got)
	}
}

func TestClickEvent_YAMLRoundTrip(t *testing.T) {
	for _, e := range []component.ClickEvent{
		component.OpenURL("https://example.com"),
		component.ChangePage(3),
	} {
		data, err := model.ToYAML(e)
		if err != nil {
			t.Fatalf("ToYAML() error = %v", err)
		}

		var back component.ClickEvent
		if err := model.FromYAML(data, &back); err != nil {
			t.Fatalf("FromYAML() error = %v", err)
		}
		if !back.Equal(e) {
			t.Errorf("round-trip = %v, want %v", back, e)
		}
	}
}

func TestClickEvent_Zero(t *testing.T) {
	var e component.ClickEvent
	if !e.IsZero() {
		t.Error("zero ClickEvent does not report IsZero")
	}
	if component.OpenURL("https://example.com").IsZero() {
		t.Error("populated ClickEvent reports IsZero")
	}
}
