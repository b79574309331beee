package mcts

// Prior increments applied at node expansion, transcribed from michi.h's
// PRIOR_* family (none of which the teacher carries — its board has no
// search tree at all).
const (
	PriorEvenPV = 10
	PriorEvenPW = 5

	PriorCaptureOne  = 15
	PriorCaptureMany = 30
	PriorPat3        = 10

	PriorEmptyArea = 10

	PriorSelfAtari = 10

	PriorLargePattern = 100

	RaveEquiv = 3500

	ExpandVisits = 8

	ReportPeriod = 200

	ResignThreshold     = 0.2
	FastPlay20Threshold = 0.8
	FastPlay5Threshold  = 0.95
)

// PriorCFG holds the additional prior for a candidate move at common-fate-graph
// distance 1, 2, or 3 from the position's last move (index 0 == distance 1).
// Transcribed from michi.c's PRIOR_CFG.
var PriorCFG = [3]int{24, 22, 8}
