package enums

import "testing"

func TestNormalizeSwipeKind(t *testing.T) {
	cases := []struct {
		input string
		want  SwipeKind
		ok    bool
	}{
		{"LIKE", SwipeKindLike, true},
		{"like", SwipeKindLike, true},
		{" pass ", SwipeKindPass, true},
		{"SUPER_LIKE", SwipeKindSuperLike, true},
		{"superlike", SwipeKindSuperLike, true},
		{"WINK", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeSwipeKind(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("normalize %q: got (%q, %v) want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormsMatch(t *testing.T) {
	if !SwipeKindLike.FormsMatch() || !SwipeKindSuperLike.FormsMatch() {
		t.Fatalf("like kinds must form matches")
	}
	if SwipeKindPass.FormsMatch() {
		t.Fatalf("pass must not form a match")
	}
}
