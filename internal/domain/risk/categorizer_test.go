package risk

import (
	"math"
	"testing"
)

func TestCategorizeBands(t *testing.T) {
	c := Default()

	cases := []struct {
		score float64
		want  string
	}{
		{0.0, LabelLow},
		{0.34, LabelLow},
		{0.35, LabelMedium},
		{0.54, LabelMedium},
		{0.55, LabelHigh},
		{0.71, LabelHigh},
		{0.72, LabelVeryHigh},
		{1.0, LabelVeryHigh},
	}
	for _, tc := range cases {
		if got := c.Categorize(tc.score); got != tc.want {
			t.Errorf("Categorize(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCategorizeClampsOutOfRange(t *testing.T) {
	c := Default()

	if got := c.Categorize(-1); got != c.Categorize(0) {
		t.Errorf("Categorize(-1) = %q, want same as Categorize(0)", got)
	}
	if got := c.Categorize(2); got != LabelVeryHigh {
		t.Errorf("Categorize(2) = %q, want %q", got, LabelVeryHigh)
	}
}

func TestCategorizeNaN(t *testing.T) {
	c := Default()

	if got := c.Categorize(math.NaN()); got != LabelVeryHigh {
		t.Errorf("Categorize(NaN) = %q, want %q", got, LabelVeryHigh)
	}
}

func TestPresentationDataCoversEveryLabel(t *testing.T) {
	for _, label := range []string{LabelLow, LabelMedium, LabelHigh, LabelVeryHigh} {
		if Color(label) == fallbackColor {
			t.Errorf("missing color for %q", label)
		}
		if Explanation(label) == "" {
			t.Errorf("missing explanation for %q", label)
		}
		if len(Mitigation(label)) == 0 {
			t.Errorf("missing mitigation advice for %q", label)
		}
	}
	if Color("unknown") != fallbackColor {
		t.Error("unknown label should map to the fallback color")
	}
}

func TestOrderIsMonotonic(t *testing.T) {
	if !(Order(LabelLow) < Order(LabelMedium) &&
		Order(LabelMedium) < Order(LabelHigh) &&
		Order(LabelHigh) < Order(LabelVeryHigh)) {
		t.Error("severity order must increase across the bands")
	}
}
