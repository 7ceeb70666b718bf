package path

import "strconv"

// Provides different options how a best-first search treats its nodes
type SearchOptions byte

const (
	discoveryMarking SearchOptions = 1 << iota // mark nodes as visited when they enter the frontier instead of when they get finalized
	noReopening                                // never put a finalized node back into the frontier
	skipPredecessor                            // don't relax the arc back to the predecessor of the current node
)

// Create the default SearchOptions (mark on finalization, reopening allowed, arcs back to the predecessor skipped)
func MakeSearchOptions() SearchOptions {
	return SearchOptions(0).Set(skipPredecessor)
}

// Set the defined options and return a new SearchOptions
func (so SearchOptions) Set(o SearchOptions) SearchOptions {
	return so | o
}

// Reset the defined options and return a new SearchOptions
func (so SearchOptions) Reset(o SearchOptions) SearchOptions {
	return so & ^o
}

func (so SearchOptions) SetDiscoveryMarking(flag bool) SearchOptions {
	if flag {
		return so.Set(discoveryMarking)
	} else {
		return so.Reset(discoveryMarking)
	}
}

func (so SearchOptions) IsDiscoveryMarking() bool {
	return so&discoveryMarking != 0
}

func (so SearchOptions) SetReopening(flag bool) SearchOptions {
	if flag {
		return so.Reset(noReopening)
	} else {
		return so.Set(noReopening)
	}
}

func (so SearchOptions) IsReopening() bool {
	return so&noReopening == 0
}

func (so SearchOptions) SetSkipPredecessor(flag bool) SearchOptions {
	if flag {
		return so.Set(skipPredecessor)
	} else {
		return so.Reset(skipPredecessor)
	}
}

func (so SearchOptions) IsSkipPredecessor() bool {
	return so&skipPredecessor != 0
}

func (so SearchOptions) String() string {
	marking := "finalization"
	if so.IsDiscoveryMarking() {
		marking = "discovery"
	}
	return "marking=" + marking + " reopening=" + strconv.FormatBool(so.IsReopening()) + " skipPredecessor=" + strconv.FormatBool(so.IsSkipPredecessor())
}
