package profile

import (
	"reflect"
	"testing"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(
		map[string]string{
			"coding": "programming",
			"maths":  "mathematics",
		},
		map[string][]string{
			"STEM": {"mathematics", "coding"},
		},
		map[string][]string{
			"Physics":          {"science", "maths"},
			"Computer Studies": {"coding"},
		},
	)
}

func TestNormalize(t *testing.T) {
	n := testNormalizer()

	cases := []struct {
		in   string
		want string
	}{
		{"Coding", "programming"},
		{"  MATHS  ", "mathematics"},
		{"welding", "welding"},
		{"", ""},
	}
	for _, c := range cases {
		if got := n.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitListDropsEmptyEntries(t *testing.T) {
	n := testNormalizer()

	got := n.SplitList("Coding, , maths,,welding")
	want := []string{"programming", "mathematics", "welding"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
}

func TestExpandTracksCBC(t *testing.T) {
	n := testNormalizer()

	got := n.ExpandTracks("CBC", "STEM", "")
	want := []string{"mathematics", "programming"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandTracks cbc = %v, want %v", got, want)
	}
}

func TestExpandTracksKCSE(t *testing.T) {
	n := testNormalizer()

	got := n.ExpandTracks("8-4-4", "", "Physics, Computer Studies")
	want := []string{"science", "mathematics", "programming"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandTracks 8-4-4 = %v, want %v", got, want)
	}
}

func TestExpandTracksUnknownUserType(t *testing.T) {
	n := testNormalizer()

	if got := n.ExpandTracks("graduate", "STEM", "Physics"); len(got) != 0 {
		t.Fatalf("ExpandTracks graduate = %v, want empty", got)
	}
}
