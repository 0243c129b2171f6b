package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{colorCount, ""},
	}
	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.want)
		}
	}
}

func TestColorsHaveCodes(t *testing.T) {
	colors := Colors()
	if len(colors) != int(colorCount)-1 {
		t.Fatalf("Colors() returned %d colors, expected %d", len(colors), colorCount-1)
	}
	for _, c := range colors {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
