// Package mcts implements the search tree: node expansion with domain
// priors, RAVE-blended urgency, descent, backup, and the top-level
// tree_search loop. Grounded on original_source/michi.c's TreeNode/expand/
// rave_urgency/tree_descend/tree_update/tree_search family, none of which
// survive in the teacher (its naive string board never grew a search tree).
package mcts

import (
	"math"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
	"github.com/gobanengine/michigo/pkg/tactics"
)

// Node is one tree node: the position it represents (always the position
// just after the move that led here — the root is the exception, holding
// the position search was called with) plus its visit/win and RAVE
// statistics. Children is nil until Expand runs; a terminal leaf never
// grows any (the caller relies on nchildren==0 still eventually getting
// visited enough to expand, except when forced to a single PASS child).
//
// Unlike the reference engine's calloc'd tree and unlike a concurrent
// search tree (see IlikeChooros-go-mcts's atomic NodeStats), this search
// runs single-threaded per the engine's scheduling model, so the counters
// below are plain float64s — no atomics, no virtual loss.
type Node struct {
	Pos *board.Position

	Children []*Node

	V, W   float64 // visits, wins (from the perspective of the side that just played to reach this node)
	PV, PW float64 // prior visits/wins folded into V/W's denominator at urgency time, never decayed

	AV, AW float64 // AMAF visits/wins (RAVE)
}

// NewNode builds a leaf node wrapping pos, with the even prior already
// applied. Grounded on michi.c's new_tree_node.
func NewNode(pos *board.Position) *Node {
	return &Node{
		Pos: pos,
		PV:  PriorEvenPV,
		PW:  PriorEvenPW,
	}
}

// Expand adds and initializes n's children from every legal non-eye-filling
// move (plus, if none exist, a single forced PASS child), seeding each
// child's priors from the capture/pattern-3/CFG-distance/empty-area/
// self-atari/large-pattern heuristics. Grounded on michi.c's expand.
func Expand(n *Node, c *ctx.Context) {
	g := n.Pos.Geometry()

	var cfgMap []int
	if n.Pos.Last != board.Pass && n.Pos.Last != board.NoPoint {
		cfgMap = tactics.ComputeCFGDistances(n.Pos, n.Pos.Last)
	}

	candidates := allEmptyNonEye(n.Pos)
	children := make(map[board.Point]*Node, len(candidates))
	n.Children = n.Children[:0]
	for _, pt := range candidates {
		child := n.Pos.Clone()
		if _, err := child.PlayMove(pt); err != nil {
			continue
		}
		node := NewNode(child)
		children[pt] = node
		n.Children = append(n.Children, node)
	}

	// Capture and 3x3-pattern priors: consider every interior point, not
	// just the last-move neighborhood (expand runs once per node, not per
	// playout step, so the cost of scanning the whole board is
	// acceptable). Grounded on michi.c's "allpoints": despite its name
	// suggesting a live point set, it is filled once, from the *empty*
	// starting position, and never updated again — at that moment every
	// interior point is empty, so it is really just "every interior
	// point of the board" in disguise, which is what this reproduces
	// directly instead of replaying the quirk.
	allPoints := make([]board.Point, 0, g.BoardSize)
	for pt := board.Point(g.IMin); pt < board.Point(g.IMax); pt++ {
		allPoints = append(allPoints, pt)
	}

	for _, pt := range allPoints {
		col := n.Pos.AtPoint(pt)
		if col != board.ToPlay && col != board.Other {
			continue
		}
		_, moves, sizes := tactics.FixAtari(n.Pos, c, pt, false, true, false)
		for i, mv := range moves {
			node, ok := children[mv]
			if !ok {
				continue
			}
			if sizes[i] == 1 {
				node.PV += PriorCaptureOne
				node.PW += PriorCaptureOne
			} else {
				node.PV += PriorCaptureMany
				node.PW += PriorCaptureMany
			}
		}
	}
	for _, pt := range allPoints {
		if n.Pos.AtPoint(pt) != board.Empty {
			continue
		}
		if !c.Pattern3.Match(n.Pos.Env8(pt)) {
			continue
		}
		if node, ok := children[pt]; ok {
			node.PV += PriorPat3
			node.PW += PriorPat3
		}
	}

	largeBoard := c.LargePatterns.NewLargeBoard()
	largeBoard.SyncFrom(n.Pos, g)

	for pt, node := range children {
		if cfgMap != nil && cfgMap[pt]-1 >= 0 && cfgMap[pt]-1 < len(PriorCFG) {
			node.PV += float64(PriorCFG[cfgMap[pt]-1])
			node.PW += float64(PriorCFG[cfgMap[pt]-1])
		}

		height := tactics.LineHeight(g, pt)
		if height <= 2 && tactics.EmptyArea(n.Pos, pt, 3) {
			if height <= 1 {
				node.PV += PriorEmptyArea
			}
			if height == 2 {
				node.PV += PriorEmptyArea
				node.PW += PriorEmptyArea
			}
		}

		if _, selfAtariMoves, _ := tactics.FixAtari(node.Pos, c, pt, true, true, false); len(selfAtariMoves) > 0 {
			node.PV += PriorSelfAtari
		}

		if patternProb, ok := c.LargePatterns.Probability(largeBoard, pt); ok && patternProb > 0 {
			prior := math.Sqrt(float64(patternProb)) * PriorLargePattern
			node.PV += prior
			node.PW += prior
		}
	}

	if len(n.Children) == 0 {
		passPos := n.Pos.Clone()
		passPos.PassMove()
		n.Children = []*Node{NewNode(passPos)}
	}
}

// allEmptyNonEye lists every empty point that is not a true eye for the
// side to move — the unfiltered candidate set expand() builds children
// from. Grounded on michi.c's expand calling gen_playout_moves_random with
// a start just before IMIN (a linear scan, not a random-start one: move
// ordering doesn't matter here since every legal child gets a node).
func allEmptyNonEye(pos *board.Position) []board.Point {
	g := pos.Geometry()
	var out []board.Point
	for pt := board.Point(g.IMin); pt < board.Point(g.IMax); pt++ {
		if pos.AtPoint(pt) != board.Empty {
			continue
		}
		if col, ok := board.IsEye(pos, pt); ok && col == board.ToPlay {
			continue
		}
		out = append(out, pt)
	}
	return out
}
