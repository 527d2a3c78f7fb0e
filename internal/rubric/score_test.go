package rubric

import (
	"errors"
	"testing"
)

// testCatalog mirrors the scenario table: an A item worth 2 points, an
// assistance-gated B item with levels 0/1/2, and a C item worth 1 point.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]ItemDefinition{
		{ID: "a_emergency", Label: "救急搬送後の入院", Category: CategoryA, Points: 2, Input: InputBinary},
		{ID: "b_transfer", Label: "移乗", Category: CategoryB, Points: 2, Input: InputLeveled, Options: levels012, HasAssistance: true},
		{ID: "c_laparo", Label: "開腹手術", Category: CategoryC, Points: 1, Input: InputBinary},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestComputeScoresZeroBaseline(t *testing.T) {
	s := ComputeScores(testCatalog(t), ItemValues{})
	if s != (Scores{}) {
		t.Errorf("empty input scored %+v, want all zero", s)
	}
}

func TestComputeScoresAdditivity(t *testing.T) {
	cat := Default()
	// Mark a subset of A items present; a must equal the sum of their points.
	values := ItemValues{
		"a_wound_care":  Level(1),
		"a_transfusion": Level(1), // 1 + 2 = 3
		"c_craniotomy":  Level(1),
		"c_laparotomy":  Level(1), // 1 + 1 = 2
	}
	s := ComputeScores(cat, values)
	if s.A != 3 {
		t.Errorf("a = %d, want 3", s.A)
	}
	if s.C != 2 {
		t.Errorf("c = %d, want 2", s.C)
	}
	if s.B != 0 {
		t.Errorf("b = %d, want 0", s.B)
	}
}

func TestComputeScoresRecordedZeroIsNotPresence(t *testing.T) {
	cat := testCatalog(t)
	s := ComputeScores(cat, ItemValues{"a_emergency": Level(0), "c_laparo": Level(0)})
	if s.A != 0 || s.C != 0 {
		t.Errorf("recorded zero contributed: %+v", s)
	}
}

func TestAssistanceGating(t *testing.T) {
	cat := testCatalog(t)
	cases := []struct {
		name  string
		value ItemValue
		wantB int
	}{
		{"assisted level is counted", LevelAssist(2, true), 2},
		{"unassisted level is zeroed", LevelAssist(2, false), 0},
		{"absent flag defaults to not performed", Level(2), 0},
		{"level zero with assistance", LevelAssist(0, true), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ComputeScores(cat, ItemValues{"b_transfer": tc.value})
			if s.B != tc.wantB {
				t.Errorf("b = %d, want %d", s.B, tc.wantB)
			}
		})
	}
}

func TestUngatedBItemNeedsNoAssistance(t *testing.T) {
	cat := Default()
	s := ComputeScores(cat, ItemValues{"b_rolling_over": Level(2)})
	if s.B != 2 {
		t.Errorf("b = %d, want 2", s.B)
	}
}

func TestEvaluateSeverity(t *testing.T) {
	cases := []struct {
		scores Scores
		want   bool
	}{
		{Scores{A: 2, B: 3, C: 0}, true},
		{Scores{A: 1, B: 10, C: 0}, false},
		{Scores{A: 10, B: 2, C: 0}, false},
		{Scores{A: 0, B: 0, C: 1}, true},
		{Scores{A: 0, B: 0, C: 0}, false},
		{Scores{A: 3, B: 4, C: 2}, true},
	}
	for _, tc := range cases {
		got, err := EvaluateSeverity(RubricAcuteGeneral1, tc.scores)
		if err != nil {
			t.Fatalf("%+v: %v", tc.scores, err)
		}
		if got != tc.want {
			t.Errorf("EvaluateSeverity(%+v) = %v, want %v", tc.scores, got, tc.want)
		}
	}
}

func TestEvaluateSeverityUnknownRubric(t *testing.T) {
	got, err := EvaluateSeverity("icu-2026", Scores{A: 9, B: 9, C: 9})
	if !errors.Is(err, ErrUnknownRubric) {
		t.Fatalf("err = %v, want ErrUnknownRubric", err)
	}
	if got {
		t.Error("unknown rubric must default to not severe")
	}
}

// The worked scenario from the assessment form documentation.
func TestScoringScenario(t *testing.T) {
	cat := testCatalog(t)
	values := ItemValues{
		"a_emergency": Level(1),
		"b_transfer":  LevelAssist(2, true),
		"c_laparo":    Level(0),
	}
	s := ComputeScores(cat, values)
	if s != (Scores{A: 2, B: 2, C: 0}) {
		t.Fatalf("scores = %+v, want {2 2 0}", s)
	}
	severe, err := EvaluateSeverity(RubricAcuteGeneral1, s)
	if err != nil {
		t.Fatal(err)
	}
	if severe {
		t.Error("b<3 and c<1 must not be severe")
	}

	// Flip assistance off: the gated B contribution disappears.
	values["b_transfer"] = LevelAssist(2, false)
	if b := ComputeScores(cat, values).B; b != 0 {
		t.Errorf("b = %d after removing assistance, want 0", b)
	}
}

func TestMissingItems(t *testing.T) {
	cat := testCatalog(t)

	missing := MissingItems(cat, ItemValues{})
	if len(missing) != 3 {
		t.Fatalf("empty record missing %d items, want 3", len(missing))
	}
	// Declaration order is preserved.
	if missing[0].ID != "a_emergency" || missing[2].ID != "c_laparo" {
		t.Errorf("order broken: %v", missing)
	}

	complete := ItemValues{
		"a_emergency": Level(0),
		"b_transfer":  LevelAssist(1, false),
		"c_laparo":    Level(0),
	}
	if got := MissingItems(cat, complete); len(got) != 0 {
		t.Errorf("complete record reported missing: %v", got)
	}

	// A gated positive level with no recorded flag still needs confirmation.
	unflagged := ItemValues{
		"a_emergency": Level(0),
		"b_transfer":  Level(1),
		"c_laparo":    Level(0),
	}
	got := MissingItems(cat, unflagged)
	if len(got) != 1 || got[0].ID != "b_transfer" {
		t.Errorf("got %v, want b_transfer only", got)
	}
}
