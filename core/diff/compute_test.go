package diff

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	key string
	val int
}

func keyPolicy(detectMoves bool) Policy[entry] {
	return Policy[entry]{
		SameItem:    func(a, b entry) bool { return a.key == b.key },
		SameContent: func(a, b entry) bool { return a == b },
		DetectMoves: detectMoves,
	}
}

func entries(keys ...string) []entry {
	out := make([]entry, len(keys))
	for i, k := range keys {
		out[i] = entry{key: k}
	}
	return out
}

// recorder collects dispatched ops for assertions.
type recorder struct {
	calls []string
}

func (r *recorder) Inserted(position, count int) {
	r.calls = append(r.calls, fmt.Sprintf("insert %d+%d", position, count))
}

func (r *recorder) Removed(position, count int) {
	r.calls = append(r.calls, fmt.Sprintf("remove %d+%d", position, count))
}

func (r *recorder) Moved(from, to int) {
	r.calls = append(r.calls, fmt.Sprintf("move %d->%d", from, to))
}

func (r *recorder) Changed(position, count int) {
	r.calls = append(r.calls, fmt.Sprintf("change %d+%d", position, count))
}

func TestCompute_Scripts(t *testing.T) {
	tests := []struct {
		name        string
		before      []entry
		after       []entry
		detectMoves bool
		want        Script
	}{
		{
			name:   "identical lists",
			before: entries("A", "B", "C"),
			after:  entries("A", "B", "C"),
			want:   nil,
		},
		{
			name:   "insert into empty",
			before: nil,
			after:  entries("H", "A", "B"),
			want:   Script{{Kind: KindInsert, Position: 0, Count: 3}},
		},
		{
			name:   "remove middle",
			before: entries("A", "B", "C"),
			after:  entries("A", "C"),
			want:   Script{{Kind: KindRemove, Position: 1, Count: 1}},
		},
		{
			name:   "replace data under kept header",
			before: entries("H", "A", "B"),
			after:  entries("H", "C"),
			want: Script{
				{Kind: KindRemove, Position: 1, Count: 2},
				{Kind: KindInsert, Position: 1, Count: 1},
			},
		},
		{
			name:   "removals run from the end",
			before: entries("A", "B", "C", "D", "E"),
			after:  entries("B", "D"),
			want: Script{
				{Kind: KindRemove, Position: 4, Count: 1},
				{Kind: KindRemove, Position: 2, Count: 1},
				{Kind: KindRemove, Position: 0, Count: 1},
			},
		},
		{
			name:        "rotation detected as move",
			before:      entries("A", "B", "C"),
			after:       entries("C", "A", "B"),
			detectMoves: true,
			want:        Script{{Kind: KindMove, Position: 2, Count: 1, To: 0}},
		},
		{
			name:   "rotation without move detection",
			before: entries("A", "B", "C"),
			after:  entries("C", "A", "B"),
			want: Script{
				{Kind: KindRemove, Position: 2, Count: 1},
				{Kind: KindInsert, Position: 0, Count: 1},
			},
		},
		{
			name:   "content change",
			before: []entry{{key: "A"}, {key: "B", val: 1}, {key: "C", val: 1}},
			after:  []entry{{key: "A"}, {key: "B", val: 2}, {key: "C", val: 2}},
			want:   Script{{Kind: KindChange, Position: 1, Count: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.before, tt.after, keyPolicy(tt.detectMoves))
			assert.Equal(t, tt.want, got)

			applied, err := Apply(tt.before, tt.after, got)
			require.NoError(t, err)
			assert.Equal(t, len(tt.after), len(applied))
			for i := range tt.after {
				assert.Equal(t, tt.after[i], applied[i])
			}
		})
	}
}

func TestCompute_NilSameContentSkipsChanges(t *testing.T) {
	p := Policy[entry]{SameItem: func(a, b entry) bool { return a.key == b.key }}
	script := Compute([]entry{{key: "A", val: 1}}, []entry{{key: "A", val: 2}}, p)
	assert.True(t, script.IsEmpty())
}

// TestCompute_RandomRoundTrip checks that replaying any computed script rebuilds the target list.
func TestCompute_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

	pick := func() []entry {
		perm := rng.Perm(len(alphabet))
		n := rng.Intn(len(alphabet) + 1)
		out := make([]entry, 0, n)
		for _, idx := range perm[:n] {
			out = append(out, entry{key: alphabet[idx], val: rng.Intn(2)})
		}
		return out
	}

	for round := 0; round < 500; round++ {
		before, after := pick(), pick()
		for _, moves := range []bool{false, true} {
			script := Compute(before, after, keyPolicy(moves))
			applied, err := Apply(before, after, script)
			require.NoError(t, err, "round %d moves=%v", round, moves)
			require.Equal(t, len(after), len(applied), "round %d moves=%v", round, moves)
			for i := range after {
				require.Equal(t, after[i], applied[i], "round %d moves=%v index %d", round, moves, i)
			}
			if !moves {
				assert.Zero(t, script.Summary().Moved)
			}
		}
	}
}

func TestScript_DispatchAndSummary(t *testing.T) {
	script := Script{
		{Kind: KindRemove, Position: 3, Count: 2},
		{Kind: KindMove, Position: 2, Count: 1, To: 0},
		{Kind: KindInsert, Position: 1, Count: 4},
		{Kind: KindChange, Position: 0, Count: 1},
	}

	rec := &recorder{}
	script.Dispatch(rec)

	assert.Equal(t, []string{"remove 3+2", "move 2->0", "insert 1+4", "change 0+1"}, rec.calls)
	assert.Equal(t, Counts{Removed: 2, Moved: 1, Inserted: 4, Changed: 1}, script.Summary())
	assert.False(t, script.IsEmpty())
}

func TestApply_OutOfRange(t *testing.T) {
	_, err := Apply(entries("A"), entries("A"), Script{{Kind: KindRemove, Position: 1, Count: 1}})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Apply(entries("A"), entries("A"), Script{{Kind: KindMove, Position: 0, Count: 1, To: 3}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
