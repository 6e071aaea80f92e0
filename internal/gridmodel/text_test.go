package gridmodel

import "testing"

func TestValueRuneRoundTrip(t *testing.T) {
	for v := 1; v <= 25; v++ {
		r := ValueRune(v)
		got, ok := RuneValue(r)
		if !ok || got != v {
			t.Errorf("RuneValue(ValueRune(%d)) = (%d, %v), want (%d, true)", v, got, ok, v)
		}
	}
}

func TestValueRuneEmpty(t *testing.T) {
	if ValueRune(0) != '.' {
		t.Errorf("ValueRune(0) = %q, want '.'", ValueRune(0))
	}
	v, ok := RuneValue('.')
	if !ok || v != 0 {
		t.Errorf("RuneValue('.') = (%d, %v), want (0, true)", v, ok)
	}
	v, ok = RuneValue('0')
	if !ok || v != 0 {
		t.Errorf("RuneValue('0') = (%d, %v), want (0, true)", v, ok)
	}
}

func TestRuneValueCaseInsensitive(t *testing.T) {
	lower, ok := RuneValue('c')
	if !ok {
		t.Fatal("RuneValue('c') not recognized")
	}
	upper, ok := RuneValue('C')
	if !ok {
		t.Fatal("RuneValue('C') not recognized")
	}
	if lower != upper {
		t.Errorf("RuneValue('c') = %d, RuneValue('C') = %d, want equal", lower, upper)
	}
}

func TestRuneValueUnrecognized(t *testing.T) {
	if _, ok := RuneValue('!'); ok {
		t.Error("RuneValue('!') = ok, want unrecognized")
	}
}

func TestRowColCellName(t *testing.T) {
	if RowName(0) != "A" || ColName(1) != "b" {
		t.Errorf("RowName(0)=%q ColName(1)=%q, want A, b", RowName(0), ColName(1))
	}
	if CellName(0, 1) != "Ab" {
		t.Errorf("CellName(0,1) = %q, want Ab", CellName(0, 1))
	}
}

func TestParseTextIgnoresSeparators(t *testing.T) {
	ok4x4 := "1.34\n.2.1\n3.21\n41.."
	grid, err := ParseText(2, ok4x4)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if grid[0][0] != 1 || grid[0][1] != 0 || grid[0][2] != 3 || grid[0][3] != 4 {
		t.Errorf("row 0 = %v, want [1 0 3 4]", grid[0])
	}
}

func TestParseTextWrongCount(t *testing.T) {
	if _, err := ParseText(2, "123"); err == nil {
		t.Error("ParseText with too few characters = nil error, want error")
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	given := [][]int{
		{1, 0, 3, 4},
		{0, 2, 0, 0},
		{3, 4, 2, 1},
		{2, 1, 4, 3},
	}
	g, err := Build(2, given)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	text := FormatText(g)
	parsed, err := ParseText(2, text)
	if err != nil {
		t.Fatalf("ParseText(FormatText(g)): %v", err)
	}
	if parsed[0][0] != 1 || parsed[1][1] != 2 {
		t.Errorf("round trip mismatch: %v", parsed)
	}
}
