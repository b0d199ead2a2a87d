package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(s State) []string {
	out := make([]string, len(s.Toasts))
	for i, t := range s.Toasts {
		out[i] = t.ID
	}
	return out
}

func stateOf(idList ...string) State {
	var s State
	for i := len(idList) - 1; i >= 0; i-- {
		s = Apply(s, Add{Toast: Toast{ID: idList[i], Open: true}}, 0)
	}
	return s
}

type unknownAction struct{}

func (unknownAction) actionName() string { return "unknown" }

func TestApply_AddPrependsNewestFirst(t *testing.T) {
	var s State
	for _, id := range []string{"a", "b", "c"} {
		s = Apply(s, Add{Toast: Toast{ID: id, Open: true}}, 0)
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids(s))
}

func TestApply_AddTruncatesToLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		adds  []string
		want  []string
	}{
		{"under limit", 5, []string{"a", "b"}, []string{"b", "a"}},
		{"at limit", 2, []string{"a", "b"}, []string{"b", "a"}},
		{"over limit drops oldest", 2, []string{"a", "b", "c"}, []string{"c", "b"}},
		{"limit one keeps newest", 1, []string{"a", "b", "c"}, []string{"c"}},
		{"zero limit is unbounded", 0, []string{"a", "b", "c"}, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			for _, id := range tt.adds {
				s = Apply(s, Add{Toast: Toast{ID: id}}, tt.limit)
				if tt.limit > 0 {
					require.LessOrEqual(t, s.Len(), tt.limit)
				}
			}
			assert.Equal(t, tt.want, ids(s))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	before := stateOf("a", "b", "c")
	snapshot := before.Clone()

	_ = Apply(before, Update{Patch: Patch{ID: "b"}.WithTitle("changed")}, 0)
	_ = Apply(before, Dismiss{}, 0)
	_ = Apply(before, Remove{ID: "a"}, 0)
	_ = Apply(before, Add{Toast: Toast{ID: "d"}}, 2)

	assert.Equal(t, snapshot, before)
}

func TestApply_UpdateMergesInPlace(t *testing.T) {
	s := stateOf("c", "b", "a")
	s = Apply(s, Update{Patch: Patch{ID: "b"}.WithTitle("hello").WithVariant(VariantDestructive)}, 0)

	require.Equal(t, []string{"c", "b", "a"}, ids(s))
	b := s.Toasts[1]
	assert.Equal(t, "hello", b.Title)
	assert.Equal(t, VariantDestructive, b.Variant)
	assert.True(t, b.Open, "fields not in the patch are kept")
	assert.Empty(t, s.Toasts[0].Title)
	assert.Empty(t, s.Toasts[2].Title)
}

func TestApply_UpdateUnknownIDIsNoop(t *testing.T) {
	s := stateOf("a")
	got := Apply(s, Update{Patch: Patch{ID: "zzz"}.WithTitle("x")}, 0)
	assert.Equal(t, s, got)
}

func TestApply_Dismiss(t *testing.T) {
	t.Run("single id", func(t *testing.T) {
		s := Apply(stateOf("a", "b"), Dismiss{ID: "b"}, 0)
		assert.True(t, s.Toasts[0].Open)
		assert.False(t, s.Toasts[1].Open)
		assert.Equal(t, 2, s.Len(), "dismiss never removes")
	})

	t.Run("all", func(t *testing.T) {
		s := Apply(stateOf("a", "b", "c"), Dismiss{}, 0)
		require.Equal(t, 3, s.Len())
		for _, toast := range s.Toasts {
			assert.False(t, toast.Open, toast.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		s := stateOf("a")
		assert.Equal(t, s, Apply(s, Dismiss{ID: "nope"}, 0))
	})
}

func TestApply_Remove(t *testing.T) {
	t.Run("single id", func(t *testing.T) {
		s := Apply(stateOf("a", "b", "c"), Remove{ID: "b"}, 0)
		assert.Equal(t, []string{"a", "c"}, ids(s))
	})

	t.Run("all", func(t *testing.T) {
		s := Apply(stateOf("a", "b"), Remove{}, 0)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("absent id", func(t *testing.T) {
		s := Apply(State{}, Remove{ID: "a"}, 0)
		assert.Equal(t, 0, s.Len())
	})
}

func TestApply_UnknownActionReturnsStateUnchanged(t *testing.T) {
	s := stateOf("a", "b")
	assert.Equal(t, s, Apply(s, unknownAction{}, 0))
	assert.Equal(t, s, Apply(s, nil, 0))
}

func TestApply_Deterministic(t *testing.T) {
	s := stateOf("a", "b", "c")
	actions := []Action{
		Add{Toast: Toast{ID: "d"}},
		Update{Patch: Patch{ID: "a"}.WithTitle("t")},
		Dismiss{ID: "b"},
		Remove{ID: "c"},
	}
	for _, a := range actions {
		assert.Equal(t, Apply(s, a, 3), Apply(s, a, 3), Name(a))
	}
}

func TestDismissTargets(t *testing.T) {
	s := stateOf("a", "b", "a")

	assert.Equal(t, []string{"b"}, DismissTargets(s, Dismiss{ID: "b"}))
	assert.Equal(t, []string{"a", "b"}, DismissTargets(s, Dismiss{}))
	assert.Nil(t, DismissTargets(s, Dismiss{ID: "missing"}))
}

func TestDedupe(t *testing.T) {
	in := []Toast{
		{ID: "a", Title: "newest"},
		{ID: "b"},
		{ID: "a", Title: "stale"},
	}
	out := Dedupe(in)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "newest", out[0].Title)
	assert.Equal(t, "b", out[1].ID)
}

func TestGroupByPosition(t *testing.T) {
	ts := []Toast{
		{ID: "1", Position: TopLeft},
		{ID: "2", Position: BottomRight},
		{ID: "3", Position: TopLeft},
		{ID: "4", Position: "sideways"},
	}
	groups := GroupByPosition(ts)

	assert.Len(t, groups[TopLeft], 2)
	assert.Equal(t, "1", groups[TopLeft][0].ID)
	assert.Len(t, groups[BottomRight], 2, "unknown positions fall back to the default")
	assert.Equal(t, []Toast{ts[0], ts[2]}, Filter(ts, TopLeft))
}

func TestPatchApplyToKeepsID(t *testing.T) {
	p := Patch{ID: "other"}.WithTitle("x").WithOpen(false).WithPosition(TopCenter)
	got := p.ApplyTo(Toast{ID: "a", Open: true})

	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "x", got.Title)
	assert.False(t, got.Open)
	assert.Equal(t, TopCenter, got.Position)
}

func TestParsePositionAndVariant(t *testing.T) {
	for _, p := range Positions() {
		got, err := ParsePosition(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePosition("middle-center")
	require.ErrorIs(t, err, ErrUnknownPosition)

	v, err := ParseVariant("destructive")
	require.NoError(t, err)
	assert.Equal(t, VariantDestructive, v)

	_, err = ParseVariant("loud")
	require.ErrorIs(t, err, ErrUnknownVariant)
}
