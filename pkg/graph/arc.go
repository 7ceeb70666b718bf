package graph

import "math"

// Arc is a directed, weighted connection to the node with the index To.
// Weights are assumed to be non-negative.
type Arc struct {
	To     NodeId
	Weight float64
}

func MakeArc(to NodeId, weight float64) Arc {
	return Arc{To: to, Weight: weight}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Cost() float64 {
	return a.Weight
}

// Weights have to be finite and non-negative
func ValidWeight(weight float64) bool {
	return weight >= 0 && !math.IsInf(weight, 1)
}
