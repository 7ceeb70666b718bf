// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/routing"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router) DefaultApiServicer {
	return &DefaultApiService{router: router}
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	var route routing.Route
	var err error
	if routeRequest.Origin.Position != nil {
		origin := geometry.MakePoint(routeRequest.Origin.Position.X, routeRequest.Origin.Position.Y)
		destination := geometry.MakePoint(routeRequest.Destination.Position.X, routeRequest.Destination.Position.Y)
		route, err = s.router.ComputeRouteByPosition(origin, destination)
	} else {
		route, err = s.router.ComputeRoute(routeRequest.Origin.Label, routeRequest.Destination.Label)
	}
	if err != nil {
		return Response(http.StatusNotFound, nil), err
	}

	routeResult := RouteResult{Origin: route.Origin, Destination: route.Destination}
	if route.Exists {
		routeResult.Reachable = true
		waypoints := make([]Point, 0)
		for _, waypoint := range route.Waypoints {
			waypoints = append(waypoints, Point{X: waypoint.X(), Y: waypoint.Y()})
		}
		routeResult.Path = &Path{Cost: route.Cost, Nodes: route.Path, Waypoints: waypoints, Description: route.Description}
	} else {
		routeResult.Reachable = false
	}

	return Response(http.StatusOK, routeResult), nil
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, toNodes(s.router.GetNodes())), nil
}

func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, toNodes(s.router.GetSearchSpace())), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	if err := s.router.SetNavigator(navigatorRequest.Navigator); err != nil {
		return Response(http.StatusBadRequest, nil), err
	}
	if navigatorRequest.HeuristicMultiplier != 0 {
		if err := s.router.SetHeuristicMultiplier(navigatorRequest.HeuristicMultiplier); err != nil {
			return Response(http.StatusBadRequest, nil), &ParsingError{Err: fmt.Errorf("heuristicMultiplier: %w", err)}
		}
	}
	return Response(http.StatusOK, navigatorRequest.Navigator), nil
}

func (s *DefaultApiService) Traverse(ctx context.Context, traversalRequest TraversalRequest) (ImplResponse, error) {
	visited, err := s.router.Traverse(traversalRequest.Kind, traversalRequest.Start)
	if err != nil {
		return Response(http.StatusNotFound, nil), err
	}
	return Response(http.StatusOK, TraversalResult{Kind: traversalRequest.Kind, Start: traversalRequest.Start, Visited: visited}), nil
}

func toNodes(infos []routing.NodeInfo) Nodes {
	nodes := Nodes{Nodes: make([]Node, 0, len(infos))}
	for _, info := range infos {
		node := Node{Id: info.Id, Label: info.Label}
		if info.HasPosition {
			node.Position = &Point{X: info.Position.X(), Y: info.Position.Y()}
		}
		nodes.Nodes = append(nodes.Nodes, node)
	}
	return nodes
}
