package analysis

import "testing"

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"overall":85}`, `{"overall":85}`},
		{"json fence", "```json\n{\"overall\":85}\n```", `{"overall":85}`},
		{"bare fence", "```\n{\"overall\":85}\n```", `{"overall":85}`},
		{"uppercase tag", "```JSON\n{\"overall\":85}\n```", `{"overall":85}`},
		{"leading only", "```json\n{\"overall\":85}", `{"overall":85}`},
		{"trailing only", "{\"overall\":85}\n```", `{"overall":85}`},
		{"surrounding whitespace", "  \n```json\n{\"overall\":85}\n```\n  ", `{"overall":85}`},
		{"single line fence", "```{\"overall\":85}```", `{"overall":85}`},
		{"interior backticks kept", "{\"text\":\"use ``` for code\"}", "{\"text\":\"use ``` for code\"}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFence(tt.in); got != tt.want {
				t.Errorf("stripFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
