package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n float64) Value { return Number(n, "") }

func decl(prop string, vals ...Value) Declaration {
	return Declaration{Property: prop, Values: vals}
}

func TestCascadeMarginTRBL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.style")
	defer teardown()
	//
	cases := []struct {
		vals []Value
		trbl [4]float64
	}{
		{[]Value{num(1)}, [4]float64{1, 1, 1, 1}},
		{[]Value{num(1), num(2)}, [4]float64{1, 2, 1, 2}},
		{[]Value{num(1), num(2), num(3)}, [4]float64{1, 2, 3, 2}},
		{[]Value{num(1), num(2), num(3), num(4)}, [4]float64{1, 2, 3, 4}},
	}
	sides := []string{"top", "right", "bottom", "left"}
	for _, c := range cases {
		cs, err := Cascade([]Declaration{decl("margin", c.vals...)})
		require.NoError(t, err)
		for i, side := range sides {
			n, _ := cs.Value("margin-" + side).Number()
			assert.Equal(t, c.trbl[i], n, "margin with %d values, side %s", len(c.vals), side)
		}
		assert.False(t, cs.Has("margin"), "shorthand key must not survive expansion")
	}
}

func TestCascadeMarginBadShape(t *testing.T) {
	_, err := Cascade([]Declaration{decl("margin", num(1), num(2), num(3), num(4), num(5))})
	if !errors.Is(err, ErrShorthand) {
		t.Errorf("expected ErrShorthand for 5-value margin, got %v", err)
	}
}

func TestCascadeOverflowScrollAsymmetry(t *testing.T) {
	// `overflow: scroll` expands to x=auto, y=scroll -- never scroll,scroll
	cs, err := Cascade([]Declaration{decl("overflow", Keyword("scroll"))})
	if err != nil {
		t.Fatal(err)
	}
	if got := cs.Keyword("overflow-x"); got != "auto" {
		t.Errorf("expected overflow-x=auto, got %q", got)
	}
	if got := cs.Keyword("overflow-y"); got != "scroll" {
		t.Errorf("expected overflow-y=scroll, got %q", got)
	}
	cs, err = Cascade([]Declaration{decl("overflow", Keyword("hidden"))})
	if err != nil {
		t.Fatal(err)
	}
	if cs.Keyword("overflow-x") != "hidden" || cs.Keyword("overflow-y") != "hidden" {
		t.Error("expected overflow:hidden to apply to both axes, doesn't")
	}
}

func TestCascadeBorderShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.style")
	defer teardown()
	//
	red, _ := ColorFromName("red")
	blue, _ := ColorFromName("blue")
	cs, err := Cascade([]Declaration{decl("border", num(2), ColorVal(red), ColorVal(blue))})
	require.NoError(t, err)
	w, _ := cs.Value("border-width").Number()
	assert.Equal(t, 2.0, w)
	top, _ := cs.Color("border-top-color")
	right, _ := cs.Color("border-right-color")
	bottom, _ := cs.Color("border-bottom-color")
	left, _ := cs.Color("border-left-color")
	assert.Equal(t, red, top)
	assert.Equal(t, blue, right)
	assert.Equal(t, red, bottom)
	assert.Equal(t, blue, left)
}

func TestCascadeWidthFansOut(t *testing.T) {
	cs, err := Cascade([]Declaration{decl("width", num(100))})
	if err != nil {
		t.Fatal(err)
	}
	minw, _ := cs.Value("min-width").Number()
	maxw, _ := cs.Value("max-width").Number()
	if minw != 100 || maxw != 100 {
		t.Errorf("expected width:100 to set min/max to 100, got %g/%g", minw, maxw)
	}
	if cs.Has("width") {
		t.Error("shorthand key `width` must not reach layout")
	}
}

func TestCascadeBackgroundAndFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.style")
	defer teardown()
	//
	gray, _ := ColorFromName("gray")
	cs, err := Cascade([]Declaration{
		decl("background", ColorVal(gray)),
		decl("font", Keyword("bold"), num(12), Keyword("monospace")),
	})
	require.NoError(t, err)
	bg, ok := cs.Color("background-color")
	require.True(t, ok)
	assert.Equal(t, gray, bg)
	size, _ := cs.Value("font-size").Number()
	assert.Equal(t, 12.0, size)
	assert.Equal(t, "bold", cs.Keyword("font-weight"))
	assert.Equal(t, "monospace", cs.Value("font-family").Text())
}

func TestCascadeLastWins(t *testing.T) {
	red, _ := ColorFromName("red")
	blue, _ := ColorFromName("blue")
	cs, err := Cascade([]Declaration{
		decl("color", ColorVal(red)),
		decl("color", ColorVal(blue)),
	})
	if err != nil {
		t.Fatal(err)
	}
	c, _ := cs.Color("color")
	if c != blue {
		t.Errorf("expected the later declaration to win, got %v", c)
	}
}

func TestCascadeDropsInitial(t *testing.T) {
	cs, err := Cascade([]Declaration{
		decl("display", Keyword("none")),
		decl("display", Keyword("initial")),
	})
	if err != nil {
		t.Fatal(err)
	}
	if cs.Has("display") {
		t.Error("expected `initial`-valued property to be dropped, wasn't")
	}
}
