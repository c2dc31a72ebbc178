package selector

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseCanonicalText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scss.selector")
	defer teardown()
	//
	var tests = []struct {
		input, text string
	}{
		{"div", "div"},
		{"*", "*"},
		{"  .a   .b ", ".a .b"},
		{"nav>ul  li.active", "nav > ul li.active"},
		{".a+.b", ".a + .b"},
		{".a ~ .b", ".a ~ .b"},
		{"a.link:hover", "a.link:hover"},
		{"p::before", "p::before"},
		{`input[type = "text"]`, `input[type="text"]`},
		{":not( .a ,.b )", ":not(.a, .b)"},
		{"li:nth-child(odd)", "li:nth-child(odd)"},
		{"%message", "%message"},
		{"&-item", "&-item"},
		{"&.active", "&.active"},
		{".a, .b ,.c", ".a, .b, .c"},
		{"#main /* comment */ .x", "#main .x"},
	}
	for _, test := range tests {
		list, err := Parse(test.input)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.input, err)
			continue
		}
		if list.Text() != test.text {
			t.Errorf("expected %q to parse as %q, is %q", test.input, test.text, list.Text())
		}
	}
}

func TestParseStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scss.selector")
	defer teardown()
	//
	list := MustParse("div.a > #b, %p")
	expected := List{
		Selector{
			{Combinator: None, Compound: Compound{{Kind: Type, Name: "div"}, {Kind: Class, Name: "a"}}},
			{Combinator: Child, Compound: Compound{{Kind: ID, Name: "b"}}},
		},
		Selector{
			{Combinator: None, Compound: Compound{{Kind: Placeholder, Name: "p"}}},
		},
	}
	if diff := cmp.Diff(expected, list); diff != "" {
		t.Errorf("unexpected structure (-want +got):\n%s", diff)
	}
	if !list[1].IsPlaceholder() || list[0].IsPlaceholder() {
		t.Errorf("expected only second selector to be a placeholder")
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scss.selector")
	defer teardown()
	//
	for _, input := range []string{"", ".a,", "> .a", ".a >", ".a > > .b", ".", "[", "[]",
		":not(.a", "a!", "a*"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("expected %q to be rejected, wasn't", input)
			continue
		}
		var synerr *SyntaxError
		if !errors.As(err, &synerr) {
			t.Errorf("expected a SyntaxError for %q, got %T", input, err)
		}
	}
}

func TestTextIsStable(t *testing.T) {
	list := MustParse("nav > ul li.active, .btn:not(.x)")
	if list.Text() != list.Text() {
		t.Errorf("expected repeated Text() calls to be equal")
	}
	again := MustParse(list.Text())
	if again.Text() != list.Text() {
		t.Errorf("expected canonical text to be a fixpoint, is %q vs %q", again.Text(), list.Text())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustParse to panic on bad input")
		}
	}()
	MustParse(".a >")
}

func TestListHelpers(t *testing.T) {
	list := MustParse(".a, .b .c")
	if !list.Contains(MustParse(".b  .c")[0]) {
		t.Errorf("expected list to contain '.b .c'")
	}
	if list.Contains(MustParse(".c")[0]) {
		t.Errorf("expected list not to contain '.c'")
	}
	clone := list.Clone()
	clone[0][0].Compound[0].Name = "z"
	if list.Text() != ".a, .b .c" {
		t.Errorf("expected clone to be independent, original is %q", list.Text())
	}
	if !MustParse(".a.b")[0][0].Compound.Equal(MustParse(".b.a")[0][0].Compound) {
		t.Errorf("expected compound equality to ignore order")
	}
}
