// SPDX-License-Identifier: MIT

package openapi_server

type Node struct {
	Id       int    `json:"id"`
	Label    string `json:"label"`
	Position *Point `json:"position,omitempty"`
}

type Nodes struct {
	Nodes []Node `json:"nodes"`
}
