package marker

import "testing"

func TestStripComment_AnyPrefix(t *testing.T) {
	tests := []struct {
		line       string
		wantRest   string
		wantPrefix string
		wantOK     bool
	}{
		{"// hello", " hello", "//", true},
		{"  # hello", " hello", "#", true},
		{"\t-- hello", " hello", "--", true},
		{"% tex comment", " tex comment", "%", true},
		{"; lisp comment", " lisp comment", ";", true},
		{"plain text", "", "", false},
		{"", "", "", false},
		{"   ", "", "", false},
	}
	for _, tt := range tests {
		rest, prefix, ok := StripComment(tt.line, "")
		if ok != tt.wantOK {
			t.Errorf("StripComment(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			continue
		}
		if rest != tt.wantRest || prefix != tt.wantPrefix {
			t.Errorf("StripComment(%q) = (%q, %q), want (%q, %q)",
				tt.line, rest, prefix, tt.wantRest, tt.wantPrefix)
		}
	}
}

func TestStripComment_ExpectedPrefix(t *testing.T) {
	// With an expected prefix, only that exact marker is accepted.
	if _, _, ok := StripComment("# body line", "//"); ok {
		t.Error("expected # line to be rejected when // is expected")
	}
	rest, prefix, ok := StripComment("// body line", "//")
	if !ok || prefix != "//" || rest != " body line" {
		t.Errorf("got (%q, %q, %v)", rest, prefix, ok)
	}
}

func TestStripTagOpener(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{" <watcher-knight: foo />", ": foo />", true},
		{" <wk: foo />", ": foo />", true},
		{"<wk", "", true},
		{" <walrus>", "", false},
		{"no tag here", "", false},
	}
	for _, tt := range tests {
		rest, ok := StripTagOpener(tt.text)
		if ok != tt.wantOK || rest != tt.want {
			t.Errorf("StripTagOpener(%q) = (%q, %v), want (%q, %v)",
				tt.text, rest, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCommentPrefixes_ReturnsCopy(t *testing.T) {
	got := CommentPrefixes()
	got[0] = "mutated"
	if commentPrefixes[0] != "//" {
		t.Error("CommentPrefixes must not expose the internal slice")
	}
}
