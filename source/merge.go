package source

import (
	"iter"

	"github.com/ManchesterWuer/datashader/trip"
)

// Sequence is a lazily-consumed stream of records sorted by pickup time.
type Sequence interface {
	All() iter.Seq[trip.Record]
}

// Records adapts an in-memory sorted slice to a Sequence.
type Records []trip.Record

func (r Records) All() iter.Seq[trip.Record] {
	return func(yield func(trip.Record) bool) {
		for _, rec := range r {
			if !yield(rec) {
				return
			}
		}
	}
}

// Merge combines timestamp-sorted sequences into one sorted sequence, for
// stitching multiple CSV spools into a single record stream. It uses a
// tournament (loser) tree: a binary tree laid out such that nodes N and
// N+1 have parent N/2, with the winner of the whole contest at node 0.
func Merge(sequences ...Sequence) iter.Seq[trip.Record] {
	t := &mergeTree{
		nodes:     make([]mergeNode, len(sequences)*2),
		sequences: sequences,
	}
	return t.all()
}

type mergeTree struct {
	nodes     []mergeNode
	sequences []Sequence
}

type mergeNode struct {
	index int                        // Loser for all nodes except the 0th, where it is the winner.
	value trip.Record                // Value copied from the loser node, or winner for node 0.
	next  func() (trip.Record, bool) // Only populated for leaf nodes.
}

func (t *mergeTree) moveNext(index int) bool {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return true
	}
	n.value = trip.Max
	n.index = -1
	return false
}

func (t *mergeTree) all() iter.Seq[trip.Record] {
	return func(yield func(trip.Record) bool) {
		if len(t.nodes) == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			t.nodes[i+len(t.sequences)].next = next
			defer stop()
			t.moveNext(i + len(t.sequences))
		}
		t.initialize()
		for t.nodes[t.nodes[0].index].index != -1 &&
			yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

func (t *mergeTree) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *mergeTree) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if nodes[left].value.Less(nodes[right].value) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *mergeTree) replayGames(pos int) {
	nodes := t.nodes
	winningValue := nodes[pos].value
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if node.value.Less(winningValue) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winningValue = winningValue, node.value
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
	nodes[0].value = winningValue
}

func parent(i int) int { return i >> 1 }
