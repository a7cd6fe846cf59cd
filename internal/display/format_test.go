package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"hyphenated key": {input: "sheet-metal-wall", exp: "Sheet Metal Wall"},
		"single word":    {input: "wood", exp: "Wood"},
		"already cased":  {input: "Assault Rifle", exp: "Assault Rifle"},
		"empty":          {input: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "title", Title(tt.input), tt.exp)
		})
	}
}

func TestDuration(t *testing.T) {
	tests := map[string]struct {
		seconds float64
		exp     string
	}{
		"seconds":       {seconds: 6, exp: "6s"},
		"exact minutes": {seconds: 120, exp: "2m"},
		"mixed minutes": {seconds: 132, exp: "2m 12s"},
		"exact hours":   {seconds: 3600, exp: "1h"},
		"mixed hours":   {seconds: 3900, exp: "1h 5m"},
		"fractional":    {seconds: 6.4, exp: "6s"},
		"zero":          {seconds: 0, exp: "0s"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "duration", Duration(tt.seconds), tt.exp)
		})
	}
}

func TestNum(t *testing.T) {
	tests := map[string]struct {
		v   float64
		exp string
	}{
		"whole":    {v: 150, exp: "150"},
		"fraction": {v: 0.5, exp: "0.5"},
		"mixed":    {v: 2.08, exp: "2.08"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "num", Num(tt.v), tt.exp)
		})
	}
}

func TestPercent(t *testing.T) {
	tests := map[string]struct {
		v   float64
		exp string
	}{
		"typical":  {v: 0.6, exp: "60%"},
		"full":     {v: 1, exp: "100%"},
		"rounding": {v: 0.333, exp: "33%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "percent", Percent(tt.v), tt.exp)
		})
	}
}

func TestTable(t *testing.T) {
	got := Table(
		[]string{"Tool", "Qty"},
		[][]string{
			{"Hatchet", "88"},
			{"Timed Explosive Charge", "1"},
		},
	)

	exp := "Tool                    Qty\n" +
		"----------------------  ---\n" +
		"Hatchet                 88\n" +
		"Timed Explosive Charge  1"

	testutil.AssertEqual(t, "table", got, exp)
}

func TestWrap(t *testing.T) {
	long := "A high quality metal door with a hatch that can be opened to see who is on the other side before letting them in."

	got := Wrap(long)

	for _, line := range splitLines(got) {
		if len(line) > DefaultWidth {
			t.Errorf("line exceeds %d chars: %q", DefaultWidth, line)
		}
	}
}

func TestIndent(t *testing.T) {
	testutil.AssertEqual(t, "indented", Indent("a\nb", 2), "  a\n  b")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
