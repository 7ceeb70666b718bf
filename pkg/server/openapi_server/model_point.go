// SPDX-License-Identifier: MIT

package openapi_server

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
