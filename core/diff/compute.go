package diff

import (
	"fmt"
	"slices"
)

// Compute returns the edit script that turns before into after under policy p.
// Matched items are found with a longest common subsequence over p.SameItem after trimming the
// common prefix and suffix, so the cost is O(n·m) only over the region that actually differs.
func Compute[T any](before, after []T, p Policy[T]) Script {
	beforeMatch := unmatched(len(before))
	afterMatch := unmatched(len(after))
	moved := make([]bool, len(before))

	matchCommon(before, after, p.SameItem, beforeMatch, afterMatch)
	if p.DetectMoves {
		matchMoves(before, after, p.SameItem, beforeMatch, afterMatch, moved)
	}

	var script Script
	script = appendRemovals(script, beforeMatch)

	working := make([]int, 0, len(before))
	for i, j := range beforeMatch {
		if j >= 0 {
			working = append(working, i)
		}
	}
	script = appendMoves(script, working, afterMatch, moved)
	script = appendInserts(script, afterMatch)
	script = appendChanges(script, before, after, afterMatch, p.SameContent)

	return script
}

// Apply replays s against before and returns the resulting list.
// Inserted and changed entries are taken from after at their new positions.
func Apply[T any](before, after []T, s Script) ([]T, error) {
	out := make([]T, 0, max(len(before), len(after)))
	out = append(out, before...)

	for idx, op := range s {
		switch op.Kind {
		case KindRemove:
			if op.Position < 0 || op.Count < 0 || op.Position+op.Count > len(out) {
				return nil, fmt.Errorf("op %d (%s at %d): %w", idx, op.Kind, op.Position, ErrOutOfRange)
			}
			out = slices.Delete(out, op.Position, op.Position+op.Count)
		case KindMove:
			if op.Position < 0 || op.Position >= len(out) || op.To < 0 || op.To >= len(out) {
				return nil, fmt.Errorf("op %d (%s %d->%d): %w", idx, op.Kind, op.Position, op.To, ErrOutOfRange)
			}
			out = moveEntry(out, op.Position, op.To)
		case KindInsert:
			if op.Position < 0 || op.Count < 0 || op.Position > len(out) || op.Position+op.Count > len(after) {
				return nil, fmt.Errorf("op %d (%s at %d): %w", idx, op.Kind, op.Position, ErrOutOfRange)
			}
			out = slices.Insert(out, op.Position, after[op.Position:op.Position+op.Count]...)
		case KindChange:
			if op.Position < 0 || op.Count < 0 || op.Position+op.Count > len(out) || op.Position+op.Count > len(after) {
				return nil, fmt.Errorf("op %d (%s at %d): %w", idx, op.Kind, op.Position, ErrOutOfRange)
			}
			copy(out[op.Position:op.Position+op.Count], after[op.Position:op.Position+op.Count])
		default:
			return nil, fmt.Errorf("op %d: unknown kind %q", idx, op.Kind)
		}
	}

	return out, nil
}

func unmatched(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = -1
	}
	return m
}

// matchCommon pairs the longest common subsequence of before and after.
func matchCommon[T any](before, after []T, same func(a, b T) bool, beforeMatch, afterMatch []int) {
	n, m := len(before), len(after)

	lo := 0
	for lo < n && lo < m && same(before[lo], after[lo]) {
		beforeMatch[lo] = lo
		afterMatch[lo] = lo
		lo++
	}

	hiBefore, hiAfter := n, m
	for hiBefore > lo && hiAfter > lo && same(before[hiBefore-1], after[hiAfter-1]) {
		hiBefore--
		hiAfter--
		beforeMatch[hiBefore] = hiAfter
		afterMatch[hiAfter] = hiBefore
	}

	rows, cols := hiBefore-lo, hiAfter-lo
	if rows == 0 || cols == 0 {
		return
	}

	// lcs[i*width+j] is the LCS length of before[lo+i:hiBefore] and after[lo+j:hiAfter].
	width := cols + 1
	lcs := make([]int, (rows+1)*width)
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if same(before[lo+i], after[lo+j]) {
				lcs[i*width+j] = lcs[(i+1)*width+j+1] + 1
				continue
			}
			down, right := lcs[(i+1)*width+j], lcs[i*width+j+1]
			if down >= right {
				lcs[i*width+j] = down
			} else {
				lcs[i*width+j] = right
			}
		}
	}

	i, j := 0, 0
	for i < rows && j < cols {
		switch {
		case same(before[lo+i], after[lo+j]):
			beforeMatch[lo+i] = lo + j
			afterMatch[lo+j] = lo + i
			i++
			j++
		case lcs[(i+1)*width+j] >= lcs[i*width+j+1]:
			i++
		default:
			j++
		}
	}
}

// matchMoves pairs leftover items that exist on both sides.
func matchMoves[T any](before, after []T, same func(a, b T) bool, beforeMatch, afterMatch []int, moved []bool) {
	for i := range before {
		if beforeMatch[i] >= 0 {
			continue
		}
		for j := range after {
			if afterMatch[j] < 0 && same(before[i], after[j]) {
				beforeMatch[i] = j
				afterMatch[j] = i
				moved[i] = true
				break
			}
		}
	}
}

func appendRemovals(s Script, beforeMatch []int) Script {
	start, count := 0, 0
	for i := len(beforeMatch) - 1; i >= 0; i-- {
		if beforeMatch[i] < 0 {
			start = i
			count++
			continue
		}
		if count > 0 {
			s = append(s, Op{Kind: KindRemove, Position: start, Count: count})
			count = 0
		}
	}
	if count > 0 {
		s = append(s, Op{Kind: KindRemove, Position: start, Count: count})
	}
	return s
}

// appendMoves places every moved item right after its predecessor in the after order.
// working holds the before indices still present once removals ran, in list order.
func appendMoves(s Script, working []int, afterMatch []int, moved []bool) Script {
	prev := -1
	for _, i := range afterMatch {
		if i < 0 {
			continue
		}
		if moved[i] {
			from := slices.Index(working, i)
			to := 0
			if prev >= 0 {
				anchor := slices.Index(working, prev)
				if from < anchor {
					to = anchor
				} else {
					to = anchor + 1
				}
			}
			if from != to {
				working = moveEntry(working, from, to)
				s = append(s, Op{Kind: KindMove, Position: from, Count: 1, To: to})
			}
		}
		prev = i
	}
	return s
}

func appendInserts(s Script, afterMatch []int) Script {
	start, count := 0, 0
	for j, i := range afterMatch {
		if i < 0 {
			if count == 0 {
				start = j
			}
			count++
			continue
		}
		if count > 0 {
			s = append(s, Op{Kind: KindInsert, Position: start, Count: count})
			count = 0
		}
	}
	if count > 0 {
		s = append(s, Op{Kind: KindInsert, Position: start, Count: count})
	}
	return s
}

func appendChanges[T any](s Script, before, after []T, afterMatch []int, sameContent func(a, b T) bool) Script {
	if sameContent == nil {
		return s
	}
	start, count := 0, 0
	for j, i := range afterMatch {
		if i >= 0 && !sameContent(before[i], after[j]) {
			if count == 0 {
				start = j
			}
			count++
			continue
		}
		if count > 0 {
			s = append(s, Op{Kind: KindChange, Position: start, Count: count})
			count = 0
		}
	}
	if count > 0 {
		s = append(s, Op{Kind: KindChange, Position: start, Count: count})
	}
	return s
}

func moveEntry[T any](list []T, from, to int) []T {
	v := list[from]
	list = slices.Delete(list, from, from+1)
	return slices.Insert(list, to, v)
}
