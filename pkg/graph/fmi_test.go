package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cuttableGraph = `13
42
#Nodes
0 0 0
1 0 2
2 1 1
3 1 2
4 2 0
5 2 1
6 2 2
7 3 0
8 3 1
9 3 3
10 5 0
11 4 1
12 5 2
#Edges
0 1 3
0 2 4
0 4 7
1 0 3
1 2 5
1 3 2
2 0 4
2 1 5
2 3 2
2 5 1
3 1 2
3 2 2
3 6 5
4 0 7
4 5 4
4 7 6
5 2 1
5 4 4
5 6 3
5 8 1
6 3 5
6 5 3
6 9 7
7 4 6
7 8 3
7 10 5
8 5 1
8 7 3
8 9 3
8 11 1
9 6 7
9 8 3
9 12 4
10 7 5
10 11 2
10 12 4
11 8 1
11 10 2
11 12 3
12 9 4
12 10 4
12 11 3
`

func TestGraphReading(t *testing.T) {
	g, err := NewGraphFromFmiString(cuttableGraph)
	require.NoError(t, err)
	if g.AsString() != cuttableGraph {
		t.Errorf("Graph wrongly parsed\n")
	}
	assert.Equal(t, 13, g.Count())
	assert.Equal(t, 42, g.ArcCount())
	p, ok := g.GetNode(9).Position()
	assert.True(t, ok)
	assert.Equal(t, 3.0, p.Y())
}

func TestFmiPayloads(t *testing.T) {
	fmi := `2
1
#Nodes
10 0 0 Start
20 1 1
#Edges
10 20 1.5
`
	g, err := NewGraphFromFmiString(fmi)
	require.NoError(t, err)
	assert.Equal(t, "Start", g.GetNode(0).Payload())
	assert.Equal(t, "20", g.GetNode(1).Payload())
	arc, ok := g.GetArc(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1.5, arc.Weight)
}

func TestFmiErrors(t *testing.T) {
	for name, fmi := range map[string]string{
		"empty":         "",
		"no count":      "x\n",
		"broken node":   "1\n0\na b c\n",
		"missing nodes": "3\n0\n0 0 0\n",
		"unknown node":  "1\n1\n0 0 0\n0 4 1\n",
		"broken edge":   "1\n1\n0 0 0\n0 x 1\n",
		"negative edge": "2\n1\n0 0 0\n1 0 0\n0 1 -1\n",
		"nan edge":      "2\n1\n0 0 0\n1 0 0\n0 1 NaN\n",
		"inf edge":      "2\n1\n0 0 0\n1 0 0\n0 1 Inf\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewGraphFromFmiString(fmi)
			assert.ErrorIs(t, err, ErrInvalidFmi)
		})
	}
}

func TestWriteFmi(t *testing.T) {
	g, err := NewGraphFromFmiString(cuttableGraph)
	require.NoError(t, err)
	filename := filepath.Join(t.TempDir(), "graph.fmi")
	require.NoError(t, WriteFmi(g, filename))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, cuttableGraph, string(content))

	reread, err := NewGraphFromFmiFile(filename)
	require.NoError(t, err)
	assert.Equal(t, g.AsString(), reread.AsString())
}
