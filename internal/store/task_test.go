package store

import "testing"

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		line  string
		want  Task
		ok    bool
	}{
		{"open spaced", StyleSpaced, "- [ ] hello", Task{Content: "hello"}, true},
		{"done spaced", StyleSpaced, "- [x] hello", Task{Content: "hello", Completed: true}, true},
		{"open compact", StyleCompact, "- [] hello", Task{Content: "hello"}, true},
		{"done compact", StyleCompact, "- [x] hello", Task{Content: "hello", Completed: true}, true},
		{"crlf", StyleSpaced, "- [ ] hello\r", Task{Content: "hello"}, true},
		{"empty content", StyleSpaced, "- [ ] ", Task{}, true},
		{"content keeps inner spacing", StyleSpaced, "- [x]   padded  ", Task{Content: "  padded  ", Completed: true}, true},
		{"compact literal in spaced file", StyleSpaced, "- [] hello", Task{}, false},
		{"spaced literal in compact file", StyleCompact, "- [ ] hello", Task{}, false},
		{"uppercase X", StyleSpaced, "- [X] hello", Task{}, false},
		{"no trailing space", StyleSpaced, "- [ ]", Task{}, false},
		{"indented", StyleSpaced, "  - [ ] hello", Task{}, false},
		{"blank", StyleSpaced, "", Task{}, false},
		{"prose", StyleSpaced, "just some notes", Task{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.style.DecodeLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []Task{
		{Content: "buy milk"},
		{Content: "call mom", Completed: true},
		{Content: ""},
		{Content: "- [ ] nested looking", Completed: true},
		{Content: "tabs\tand unicode ✅"},
	}
	for _, style := range []Style{StyleSpaced, StyleCompact} {
		for _, r := range records {
			got, ok := style.DecodeLine(style.EncodeLine(r))
			if !ok {
				t.Fatalf("%s: %#v did not decode", style, r)
			}
			if got != r {
				t.Fatalf("%s: expected %#v, got %#v", style, r, got)
			}
		}
	}
}

func TestEncodeLine(t *testing.T) {
	if got := StyleSpaced.EncodeLine(Task{Content: "a"}); got != "- [ ] a" {
		t.Fatalf("expected %q, got %q", "- [ ] a", got)
	}
	if got := StyleCompact.EncodeLine(Task{Content: "a"}); got != "- [] a" {
		t.Fatalf("expected %q, got %q", "- [] a", got)
	}
	if got := StyleCompact.EncodeLine(Task{Content: "a", Completed: true}); got != "- [x] a" {
		t.Fatalf("expected %q, got %q", "- [x] a", got)
	}
}

func TestDecodeSkipsUnrecognisedLines(t *testing.T) {
	text := "# Groceries\n" +
		"- [ ] buy milk\n" +
		"\n" +
		"random note\n" +
		"- [x] call mom\n" +
		"-[ ] almost\n" +
		"- [ ] buy eggs"
	got := StyleSpaced.Decode(text)
	want := []Task{
		{Content: "buy milk"},
		{Content: "call mom", Completed: true},
		{Content: "buy eggs"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %#v at index %d, got %#v", want[i], i, got[i])
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := StyleSpaced.Decode(""); len(got) != 0 {
		t.Fatalf("expected no tasks, got %#v", got)
	}
}

func TestEncodeHasNoTrailingNewline(t *testing.T) {
	got := StyleSpaced.Encode([]Task{{Content: "buy milk"}, {Content: "call mom", Completed: true}})
	want := "- [ ] buy milk\n- [x] call mom"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := StyleSpaced.Encode(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{"": StyleSpaced, "spaced": StyleSpaced, " Compact ": StyleCompact} {
		got, err := parseStyle(in)
		if err != nil {
			t.Fatalf("parseStyle(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("parseStyle(%q): expected %q, got %q", in, want, got)
		}
	}
	if _, err := parseStyle("fancy"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}
