package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReplacePart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scss.selector")
	defer teardown()
	//
	var tests = []struct {
		original, matched, extending string
		result                       string // empty for no match
	}{
		{".btn", ".btn", ".error", ".error"},
		{".panel.btn", ".btn", ".error", ".panel.error"},
		{".btn.panel", ".btn", ".error", ".error.panel"},
		{"nav .btn:hover", ".btn", ".error", "nav .error:hover"},
		{".btnx", ".btn", ".error", ""},
		{"a.btn", ".btn", "div", ""},
		{"a.btn", ".btn", "a.error", "a.error"},
		{".btn", ".btn", "div.error", "div.error"},
		{"*.btn", ".btn", "li", "li"},
		{"#a.btn", ".btn", "#b", ""},
		{".a .b .c", ".b .c", ".x", ".a .x"},
		{".a > .b", ".a .b", ".x", ""},
		{".panel .btn", ".btn", "form .error", ".panel form .error"},
		{".btn, .other .btn", ".btn", ".e1, .e2", ".e1, .e2, .other .e1, .other .e2"},
		{".a, .b", ".a, .b", ".x", ".x"},
		{".a .b", ".a", ".x", ".x .b"},
		{".btn .btn", ".btn", ".x", ".x .btn"},
	}
	for _, test := range tests {
		original := MustParse(test.original)
		before := original.Text()
		result, ok := ReplacePart(original, test.matched, MustParse(test.extending))
		if test.result == "" {
			if ok {
				t.Errorf("expected %q in %q not to be replaceable, got %q", test.matched, test.original, result)
			}
			continue
		}
		if !ok {
			t.Errorf("expected %q in %q to be replaced by %q, wasn't", test.matched, test.original, test.extending)
			continue
		}
		if result.Text() != test.result {
			t.Errorf("expected replacement to be %q, is %q", test.result, result.Text())
		}
		if original.Text() != before {
			t.Errorf("expected original to stay unmodified, is %q", original.Text())
		}
	}
}

func TestReplacePartStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scss.selector")
	defer teardown()
	//
	result, ok := ReplacePart(MustParse(".panel.btn"), ".btn", MustParse(".error"))
	if !ok {
		t.Fatalf("expected .btn to be replaceable in .panel.btn")
	}
	expected := List{Selector{{Combinator: None, Compound: Compound{
		{Kind: Class, Name: "panel"}, {Kind: Class, Name: "error"},
	}}}}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("unexpected replacement (-want +got):\n%s", diff)
	}
}

func TestReplacePartBadMatchText(t *testing.T) {
	if _, ok := ReplacePart(MustParse(".a"), ".a >", MustParse(".b")); ok {
		t.Errorf("expected unparsable match text to yield no replacement")
	}
}
