package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	node := NewNode("")
	require.True(t, node.IsLeaf(), "isLeaf: failed to recognize leaf node")
	assert.Equal(t, "", node.Key())

	node.SetChild('b', NewNode("b"))
	require.False(t, node.IsLeaf(), "isLeaf: incorrectly identified node as leaf")

	node.SetChild('a', NewNode("a"))
	assert.Equal(t, 2, node.ChildCount())
	assert.Equal(t, []rune{'b', 'a'}, node.ChildKeys(), "children must keep insertion order")

	require.False(t, node.IsTerminal(), "isTerminal: incorrectly identified node a terminal")

	node.MarkTerminal()
	require.True(t, node.IsTerminal(), "isTerminal: failed to recognize terminal node")

	node.UnmarkTerminal()
	require.False(t, node.IsTerminal(), "isTerminal: incorrectly identified node a terminal")

	node.SetKey("x")
	assert.Equal(t, "x", node.Key())
}

func TestNodeChildren(t *testing.T) {
	node := NewNode("")
	b := NewNode("b")
	node.SetChild('a', NewNode("a"))
	node.SetChild('b', b)
	node.SetChild('c', NewNode("c"))

	assert.Same(t, b, node.Child('b'))
	assert.Nil(t, node.Child('z'))

	replacement := NewNode("a")
	node.SetChild('a', replacement)
	assert.Same(t, replacement, node.Child('a'))
	assert.Equal(t, []rune{'a', 'b', 'c'}, node.ChildKeys(), "replacing a child must not move it")

	require.True(t, node.DeleteChild('b'))
	require.False(t, node.DeleteChild('b'))
	assert.Equal(t, []rune{'a', 'c'}, node.ChildKeys())
	assert.Nil(t, node.onlyChild())

	require.True(t, node.DeleteChild('a'))
	assert.Equal(t, "c", node.onlyChild().Key())

	keys := node.ChildKeys()
	keys[0] = 'q'
	assert.Equal(t, []rune{'c'}, node.ChildKeys(), "ChildKeys must return a copy")
}

func TestNilNode(t *testing.T) {
	var node *Node

	assert.False(t, node.IsLeaf())
	assert.False(t, node.IsTerminal())
	assert.Nil(t, node.Child('a'))
	assert.False(t, node.DeleteChild('a'))
	assert.Equal(t, 0, node.ChildCount())
	assert.Nil(t, node.ChildKeys())
	assert.Equal(t, "", node.Key())

	node.MarkTerminal()
	node.UnmarkTerminal()
	node.SetChild('a', NewNode("a"))
	node.SetKey("a")
}

func TestStack(t *testing.T) {
	s := newStack[int]()
	require.NotNil(t, s)

	require.True(t, s.IsEmpty())
	require.Nil(t, s.Peek())
	require.Equal(t, 0, s.Size())

	s.Push(1)
	require.False(t, s.IsEmpty())
	require.Equal(t, 1, *s.Peek())

	s.Push(2)
	require.Equal(t, 2, *s.Peek())
	require.Equal(t, 2, s.Size())

	*s.Peek() = 3

	popped, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3, popped)
	require.Equal(t, 1, s.Size())

	popped, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, 1, popped)
	require.True(t, s.IsEmpty())

	_, ok = s.Pop()
	require.False(t, ok, "Pop: expected failure when popping from empty stack")
}
