package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		ellipsis  string
		want      string
	}{
		{
			name:      "zero max length keeps message",
			text:      "abcde",
			maxLength: 0,
			ellipsis:  "[..]",
			want:      "abcde",
		},
		{
			name:      "negative max length keeps message",
			text:      "abcde",
			maxLength: -3,
			ellipsis:  "[..]",
			want:      "abcde",
		},
		{
			name:      "message exactly max length",
			text:      "abcde",
			maxLength: 5,
			ellipsis:  "[..]",
			want:      "abcde",
		},
		{
			name:      "max length equals ellipsis length",
			text:      "abcde",
			maxLength: 4,
			ellipsis:  "[..]",
			want:      "[..]",
		},
		{
			name:      "longer message is shortened",
			text:      "abcdef",
			maxLength: 5,
			ellipsis:  "[..]",
			want:      "a[..]",
		},
		{
			name:      "ellipsis too long is cut",
			text:      "abcdef",
			maxLength: 3,
			ellipsis:  "[..]",
			want:      "[..",
		},
		{
			name:      "multi-byte characters are not split",
			text:      "čččč",
			maxLength: 3,
			ellipsis:  ".",
			want:      "čč.",
		},
		{
			name:      "combining sequences are not split",
			text:      "e\u0301e\u0301e\u0301e\u0301",
			maxLength: 3,
			ellipsis:  ".",
			want:      "e\u0301e\u0301.",
		},
		{
			name:      "empty ellipsis",
			text:      "123456789abcd",
			maxLength: 10,
			ellipsis:  "",
			want:      "123456789a",
		},
		{
			name:      "typical configuration",
			text:      "123456789abcd",
			maxLength: 10,
			ellipsis:  "[..]",
			want:      "123456[..]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.text, tt.maxLength, tt.ellipsis)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.text, tt.maxLength, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsMaxLength(t *testing.T) {
	texts := []string{"", "a", "hello world", "žluťoučký kůň", "日本語のテキスト"}
	ellipses := []string{"", ".", "[..]", "…"}

	for _, text := range texts {
		for _, ellipsis := range ellipses {
			for maxLength := 1; maxLength <= 12; maxLength++ {
				got := Truncate(text, maxLength, ellipsis)
				if Length(got) > maxLength {
					t.Errorf("Truncate(%q, %d, %q) = %q has length %d", text, maxLength, ellipsis, got, Length(got))
				}
			}
		}
	}
}

func TestHead(t *testing.T) {
	if got := Head("abc", 0); got != "" {
		t.Errorf("Head(abc, 0) = %q, want empty", got)
	}
	if got := Head("abc", 10); got != "abc" {
		t.Errorf("Head(abc, 10) = %q, want abc", got)
	}
	if got := Head("ččč", 2); got != "čč" {
		t.Errorf("Head(ččč, 2) = %q, want čč", got)
	}
}
