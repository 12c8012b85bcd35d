package identity

import "testing"

func TestNickFromPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"john", "john"},
		{"~john", "john"},
		{"&john", "john"},
		{"@john", "john"},
		{"%john", "john"},
		{"+john", "john"},
		{"-john", "john"},
		{" john", "john"},
		{" @john", "@john"},
		{"@@john", "@john"},
		{"", ""},
		{"@", ""},
	}

	for _, tt := range tests {
		if got := NickFromPrefix(tt.prefix); got != tt.want {
			t.Errorf("NickFromPrefix(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestNickThatSentMessage(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		prefix string
		want   string
	}{
		{
			name:   "prefix without tags",
			prefix: "john",
			want:   "john",
		},
		{
			name:   "prefix with mode",
			prefix: "@john",
			want:   "john",
		},
		{
			name:   "nick tag only",
			tags:   []string{"nick_john"},
			prefix: "--",
			want:   "john",
		},
		{
			name:   "nick tag among others",
			tags:   []string{"prefix_nick_lightcyan", "nick_john", "host_~user@domain.com"},
			prefix: "--",
			want:   "john",
		},
		{
			name: "nothing to go on",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NickThatSentMessage(tt.tags, tt.prefix); got != tt.want {
				t.Errorf("NickThatSentMessage(%v, %q) = %q, want %q", tt.tags, tt.prefix, got, tt.want)
			}
		})
	}
}
