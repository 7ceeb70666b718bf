package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/natevvv/graph-pathfinder/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodeList = `# label x y
A 0 0
B 1 0
C 0 3
D 1 3
E
`

const arcList = `0 1 1
1 3 1
0 2 4
2 3 1

3 1 1
`

func TestNewGraphFromLists(t *testing.T) {
	recorder := &trace.Recorder{}
	g, err := NewGraphFromLists(strings.NewReader(nodeList), strings.NewReader(arcList), 2, recorder)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Capacity(), "capacity grows to the number of nodes")
	assert.Equal(t, 5, g.Count())
	assert.Equal(t, 8, g.ArcCount(), "the duplicate arc is skipped")
	assert.Equal(t, "D", g.GetNode(3).Payload())

	p, ok := g.GetNode(2).Position()
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Y())
	_, ok = g.GetNode(4).Position()
	assert.False(t, ok)

	arc, ok := g.GetArc(2, 0)
	require.True(t, ok)
	assert.Equal(t, 4.0, arc.Weight)

	skipped := false
	for _, e := range recorder.Events() {
		if e.Message == "Skipping duplicate arc between 3 and 1" {
			skipped = true
		}
	}
	assert.True(t, skipped)
}

func TestListErrors(t *testing.T) {
	_, err := NewGraphFromLists(strings.NewReader("A 1\n"), strings.NewReader(""), 0, nil)
	assert.ErrorIs(t, err, ErrMalformedNode)

	_, err = NewGraphFromLists(strings.NewReader("A x 1\n"), strings.NewReader(""), 0, nil)
	assert.ErrorIs(t, err, ErrMalformedNode)

	_, err = NewGraphFromLists(strings.NewReader("A\nB\n"), strings.NewReader("0 1\n"), 0, nil)
	assert.ErrorIs(t, err, ErrMalformedArc)

	_, err = NewGraphFromLists(strings.NewReader("A\nB\n"), strings.NewReader("0 5 1\n"), 0, nil)
	assert.ErrorIs(t, err, ErrMalformedArc)

	for _, weight := range []string{"-2", "NaN", "Inf", "+Inf", "-Inf"} {
		_, err = NewGraphFromLists(strings.NewReader("A\nB\n"), strings.NewReader("0 1 1\n0 1 "+weight+"\n"), 0, nil)
		assert.ErrorIs(t, err, ErrMalformedArc, weight)
		assert.ErrorContains(t, err, "line 2", weight)
	}
}

func TestDuplicateLabels(t *testing.T) {
	recorder := &trace.Recorder{}
	g, err := NewGraphFromLists(strings.NewReader("A\nB\nA\n"), strings.NewReader(""), 0, recorder)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Count())
	id, ok := g.FindByPayload("A")
	require.True(t, ok)
	assert.Equal(t, 0, id)
	assert.Contains(t, recorder.Events(), trace.Event{Level: trace.LevelMutation, Message: "Duplicate label A at 2, lookups by label resolve to 0"})
}

func TestWriteLists(t *testing.T) {
	g, err := NewGraphFromLists(strings.NewReader(nodeList), strings.NewReader(arcList), 0, nil)
	require.NoError(t, err)
	g.AddArc(4, 0, 9)
	g.RemoveNode(1)

	var nodes, arcs bytes.Buffer
	require.NoError(t, WriteLists(g, &nodes, &arcs))
	assert.Equal(t, "A 0 0\nC 0 3\nD 1 3\nE\n", nodes.String())
	assert.Equal(t, "0 1 4\n1 2 1\n3 0 9\n", arcs.String())

	reread, err := NewGraphFromLists(&nodes, &arcs, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, reread.Count())
	assert.Equal(t, 6, reread.ArcCount())
}
