package grapheme

import "testing"

const family = "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"

func TestCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + family + "b"
	if got, want := Slice(text, 1, 3), "é"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text string
		max  int
		want string
	}{
		{text: "HelloWorld!!", max: 10, want: "HelloWorld"},
		{text: "Hello", max: 10, want: "Hello"},
		{text: "ab" + family + "cd", max: 3, want: "ab" + family},
		{text: "abc", max: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.max); got != tc.want {
			t.Fatalf("Truncate(%q, %d)=%q, want %q", tc.text, tc.max, got, tc.want)
		}
	}
}
