// SPDX-License-Identifier: MIT

package openapi_server

// Location references a node either by its label or by a position (the closest node is used)
type Location struct {
	Label    string `json:"label,omitempty"`
	Position *Point `json:"position,omitempty"`
}

type RouteRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
}

// AssertLocationRequired checks that either the label or the position is set
func AssertLocationRequired(obj Location, field string) error {
	if IsZeroValue(obj.Label) && obj.Position == nil {
		return &RequiredError{Field: field}
	}
	return nil
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	if err := AssertLocationRequired(obj.Origin, "origin"); err != nil {
		return err
	}
	if err := AssertLocationRequired(obj.Destination, "destination"); err != nil {
		return err
	}
	if (obj.Origin.Position == nil) != (obj.Destination.Position == nil) {
		return &ParsingError{Err: errMixedLocations}
	}
	return nil
}
