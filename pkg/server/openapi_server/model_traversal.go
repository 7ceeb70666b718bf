// SPDX-License-Identifier: MIT

package openapi_server

type TraversalRequest struct {
	Kind  string `json:"kind"` // dfs or bfs
	Start string `json:"start"`
}

type TraversalResult struct {
	Kind    string   `json:"kind"`
	Start   string   `json:"start"`
	Visited []string `json:"visited"`
}

func AssertTraversalRequestRequired(obj TraversalRequest) error {
	elements := map[string]interface{}{
		"kind":  obj.Kind,
		"start": obj.Start,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
