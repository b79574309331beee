package mcts

import (
	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
	"github.com/gobanengine/michigo/pkg/playout"
)

// RaveUrgency blends a node's plain expectation with its RAVE (AMAF)
// expectation, weighted by beta per the mandated formula. Grounded on
// michi.c's rave_urgency.
func RaveUrgency(n *Node) float64 {
	v := n.V + n.PV
	expectation := (n.W + n.PW) / v
	if n.AV == 0 {
		return expectation
	}
	raveExpectation := n.AW / n.AV
	beta := n.AV / (n.AV + v + v*n.AV/RaveEquiv)
	return beta*raveExpectation + (1-beta)*expectation
}

// Winrate reports a node's plain win fraction, or -0.1 for an unvisited
// node (so best_move/early-stop never mistake "never tried" for "always
// lost"). Grounded on michi.c's winrate.
func Winrate(n *Node) float64 {
	if n.V > 0 {
		return n.W / n.V
	}
	return -0.1
}

// BestMove returns the most-visited child of n, skipping any child present
// in except. Grounded on michi.c's best_move.
func BestMove(n *Node, except []*Node) *Node {
	var best *Node
	vmax := -1.0
	for _, child := range n.Children {
		if child.V <= vmax {
			continue
		}
		skip := false
		for _, e := range except {
			if child == e {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		vmax = child.V
		best = child
	}
	return best
}

// MostUrgent shuffles children (so ties and near-ties don't always resolve
// the same way across calls) and returns the one with maximum RaveUrgency.
// Grounded on michi.c's most_urgent.
func MostUrgent(children []*Node, c *ctx.Context) *Node {
	shuffled := append([]*Node(nil), children...)
	c.RNG.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	urgent := shuffled[0]
	umax := 0.0
	for _, child := range shuffled {
		u := RaveUrgency(child)
		if u > umax {
			umax = u
			urgent = child
		}
	}
	return urgent
}

// TreeDescend walks from root to a leaf, picking the most urgent child at
// each step, recording every move played along the way into amaf (first
// side to play a point claims it, as +1 for black / -1 for white),
// expanding any leaf it stops at that has accumulated enough visits.
// Returns the path root..leaf. Grounded on michi.c's tree_descend.
func TreeDescend(root *Node, c *ctx.Context, amaf []int) []*Node {
	path := []*Node{root}
	passes := 0
	for len(path[len(path)-1].Children) > 0 && passes < 2 {
		cur := path[len(path)-1]
		node := MostUrgent(cur.Children, c)
		path = append(path, node)
		move := node.Pos.Last

		if move == board.Pass {
			passes++
		} else {
			passes = 0
			if amaf[move] == 0 {
				if cur.Pos.N%2 == 0 {
					amaf[move] = 1
				} else {
					amaf[move] = -1
				}
			}
		}

		if len(node.Children) == 0 && node.V >= ExpandVisits {
			Expand(node, c)
		}
	}
	return path
}

// TreeUpdate folds one playout's result back into every node on path, leaf
// to root, negating the score at each step (the path alternates
// perspective one ply at a time) and updating each visited node's
// children's AMAF stats for moves the same side played during the
// playout. Grounded on michi.c's tree_update.
func TreeUpdate(path []*Node, amaf []int, score float64) {
	for k := len(path) - 1; k >= 0; k-- {
		n := path[k]
		n.V++
		if score < 0 {
			n.W++
		}

		var amafSide int
		if n.Pos.N%2 == 0 {
			amafSide = 1
		} else {
			amafSide = -1
		}
		for _, child := range n.Children {
			if child.Pos.Last == board.Pass || child.Pos.Last < 0 {
				continue
			}
			if amaf[child.Pos.Last] == amafSide {
				child.AV++
				if score > 0 {
					child.AW++
				}
			}
		}
		score = -score
	}
}

// TreeSearch runs n MCTS iterations from root (expanding it first if it is
// still a leaf), accumulating per-point ownership into owner (sized
// g.BoardSize; see board.Score), and returns the move to play:
// board.Resign if the best child's win rate is below ResignThreshold,
// board.Pass if the best child and its parent both ended in consecutive
// passes, otherwise the best child's move. Grounded on michi.c's
// tree_search.
func TreeSearch(root *Node, c *ctx.Context, n int, owner []float32, disp bool) board.Point {
	if len(root.Children) == 0 {
		Expand(root, c)
	}
	for i := range owner {
		owner[i] = 0
	}

	g := root.Pos.Geometry()
	amaf := make([]int, g.BoardSize)
	i := 0
	for ; i < n; i++ {
		for j := range amaf {
			amaf[j] = 0
		}
		path := TreeDescend(root, c, amaf)
		leaf := path[len(path)-1]
		pos := leaf.Pos.Clone()
		result := playout.MCPlayout(pos, c, owner, disp)
		for j, side := range result.AMAF {
			if amaf[j] == 0 {
				amaf[j] = side
			}
		}
		TreeUpdate(path, amaf, result.Score)

		best := BestMove(root, nil)
		wr := Winrate(best)
		if i > 0 && i%ReportPeriod == 0 {
			c.Logger.Info().Int("iteration", i).
				Str("move", board.StrCoord(best.Pos.Last, g)).
				Float64("visits", best.V).Float64("winrate", wr).
				Msg("tree search progress")
		}
		if (float64(i) > float64(n)*0.05 && wr > FastPlay5Threshold) ||
			(float64(i) > float64(n)*0.2 && wr > FastPlay20Threshold) {
			break
		}
	}

	best := BestMove(root, nil)
	if best.Pos.Last == board.Pass && best.Pos.Last2 == board.Pass {
		return board.Pass
	}
	if best.W/best.V < ResignThreshold {
		return board.Resign
	}
	return best.Pos.Last
}
