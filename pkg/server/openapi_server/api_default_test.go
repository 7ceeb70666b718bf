package openapi_server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodes = `A 0 0
B 1 0
C 1.5 0.5
D 2 0
E
`

const arcs = `0 1 1
1 3 1
0 2 4
2 3 1
`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	g, err := graph.NewGraphFromLists(strings.NewReader(nodes), strings.NewReader(arcs), 0, nil)
	require.NoError(t, err)
	router, err := routing.NewRouter(g, config.Default().Search)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewRouter(logger, NewDefaultApiController(NewDefaultApiService(router))))
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, server *httptest.Server, path, body string) *http.Response {
	t.Helper()
	response, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func get(t *testing.T, server *httptest.Server, path string) *http.Response {
	t.Helper()
	response, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func decode[T any](t *testing.T, response *http.Response) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
	return result
}

func TestComputeRouteByLabel(t *testing.T) {
	server := newServer(t)
	response := post(t, server, "/routes", `{"origin": {"label": "A"}, "destination": {"label": "D"}}`)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "*", response.Header.Get("Access-Control-Allow-Origin"))

	result := decode[RouteResult](t, response)
	assert.True(t, result.Reachable)
	require.NotNil(t, result.Path)
	assert.Equal(t, 2.0, result.Path.Cost)
	assert.Equal(t, []string{"A", "B", "D"}, result.Path.Nodes)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}}, result.Path.Waypoints)

	searchSpace := decode[Nodes](t, get(t, server, "/searchSpace"))
	assert.NotEmpty(t, searchSpace.Nodes)
}

func TestComputeRouteByPosition(t *testing.T) {
	server := newServer(t)
	response := post(t, server, "/routes", `{"origin": {"position": {"x": 0.1, "y": 0}}, "destination": {"position": {"x": 1.4, "y": 0.6}}}`)
	require.Equal(t, http.StatusOK, response.StatusCode)
	result := decode[RouteResult](t, response)
	assert.Equal(t, "A", result.Origin)
	assert.Equal(t, "C", result.Destination)
	assert.Equal(t, 3.0, result.Path.Cost)
}

func TestUnreachableRoute(t *testing.T) {
	server := newServer(t)
	response := post(t, server, "/routes", `{"origin": {"label": "A"}, "destination": {"label": "E"}}`)
	require.Equal(t, http.StatusOK, response.StatusCode)
	result := decode[RouteResult](t, response)
	assert.False(t, result.Reachable)
	assert.Nil(t, result.Path)
}

func TestRouteErrors(t *testing.T) {
	server := newServer(t)
	for body, status := range map[string]int{
		`{"origin": {"label": "A"}, "destination": {"label": "X"}}`:                 http.StatusNotFound,
		`{"origin": {"label": "A"}}`:                                                http.StatusBadRequest,
		`{"origin": {"label": "A"}, "destination": {"position": {"x": 1, "y": 1}}}`: http.StatusBadRequest,
		`{"origin": "A"}`: http.StatusBadRequest,
		`{"from": "A"}`:   http.StatusBadRequest,
	} {
		response := post(t, server, "/routes", body)
		assert.Equal(t, status, response.StatusCode, body)
	}
}

func TestNodes(t *testing.T) {
	server := newServer(t)
	response := get(t, server, "/nodes")
	require.Equal(t, http.StatusOK, response.StatusCode)
	result := decode[Nodes](t, response)
	require.Len(t, result.Nodes, 5)
	assert.Equal(t, Node{Id: 2, Label: "C", Position: &Point{1.5, 0.5}}, result.Nodes[2])
	assert.Nil(t, result.Nodes[4].Position)
}

func TestSetNavigator(t *testing.T) {
	server := newServer(t)
	response := post(t, server, "/navigator", `{"navigator": "bfs"}`)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "bfs", decode[string](t, response))

	response = post(t, server, "/navigator", `{"navigator": "astar", "heuristicMultiplier": 0.5}`)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	response = post(t, server, "/navigator", `{"navigator": "astar", "heuristicMultiplier": -1}`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	response = post(t, server, "/navigator", `{"navigator": "teleport"}`)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	response = post(t, server, "/navigator", `{}`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestTraverse(t *testing.T) {
	server := newServer(t)
	response := post(t, server, "/traversals", `{"kind": "bfs", "start": "A"}`)
	require.Equal(t, http.StatusOK, response.StatusCode)
	result := decode[TraversalResult](t, response)
	assert.Equal(t, []string{"A", "B", "C", "D"}, result.Visited)

	searchSpace := decode[Nodes](t, get(t, server, "/searchSpace"))
	assert.Len(t, searchSpace.Nodes, 4)

	response = post(t, server, "/traversals", `{"kind": "spiral", "start": "A"}`)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestMetrics(t *testing.T) {
	server := newServer(t)
	post(t, server, "/routes", `{"origin": {"label": "A"}, "destination": {"label": "D"}}`)
	response := get(t, server, "/metrics")
	require.Equal(t, http.StatusOK, response.StatusCode)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pathfinder_search_total")
	assert.Contains(t, string(body), `pathfinder_http_requests_total{code="2xx",route="ComputeRoute"}`)
}
