package textutil

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"< > &", "&lt; &gt; &amp;"},
		{"<>", "&lt;&gt;"},
		{`"quoted" 'text'`, `"quoted" 'text'`},
		{"plain", "plain"},
		// Already escaped input is escaped again.
		{"&lt;", "&amp;lt;"},
	}

	for _, tt := range tests {
		if got := EscapeHTML(tt.in); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeShellArg(t *testing.T) {
	got := EscapeShellArg(`a\tb\nc`)
	want := `a\\tb\\nc`
	if got != want {
		t.Errorf("EscapeShellArg() = %q, want %q", got, want)
	}

	if got := EscapeShellArg("no slashes"); got != "no slashes" {
		t.Errorf("EscapeShellArg() = %q, want unchanged", got)
	}
}
