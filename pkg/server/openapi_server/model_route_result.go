// SPDX-License-Identifier: MIT

package openapi_server

type Path struct {
	Cost        float64  `json:"cost"`
	Nodes       []string `json:"nodes"`
	Waypoints   []Point  `json:"waypoints"`
	Description string   `json:"description"`
}

type RouteResult struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Reachable   bool   `json:"reachable"`
	Path        *Path  `json:"path,omitempty"`
}
