package trie

// Node represents a single character of a word in the trie.
// The root node has an empty key.
type Node struct {
	key      string
	terminal bool

	children map[rune]*Node
	order    []rune
}

func NewNode(key string) *Node {
	return &Node{
		key:      key,
		terminal: false,
		children: make(map[rune]*Node),
	}
}

func (node *Node) Key() string {
	if nil == node {
		return ""
	}

	return node.key
}

func (node *Node) SetKey(key string) {
	if nil != node {
		node.key = key
	}
}

func (node *Node) IsLeaf() bool {
	return nil != node && 0 == len(node.children)
}

func (node *Node) IsTerminal() bool {
	return nil != node && node.terminal
}

func (node *Node) MarkTerminal() {
	if nil != node {
		node.terminal = true
	}
}

func (node *Node) UnmarkTerminal() {
	if nil != node {
		node.terminal = false
	}
}

// Child returns the child reached over c, or nil.
func (node *Node) Child(c rune) *Node {
	if nil == node {
		return nil
	}

	return node.children[c]
}

// SetChild links child under c, replacing any existing child for c.
// The replaced child keeps its position in the iteration order.
func (node *Node) SetChild(c rune, child *Node) {
	if nil == node || nil == child {
		return
	}

	if _, exists := node.children[c]; !exists {
		node.order = append(node.order, c)
	}

	node.children[c] = child
}

// DeleteChild unlinks the child reached over c.
// Returns true if there was such a child.
func (node *Node) DeleteChild(c rune) bool {
	if nil == node {
		return false
	}

	if _, exists := node.children[c]; !exists {
		return false
	}

	delete(node.children, c)

	for i, oc := range node.order {
		if oc == c {
			node.order = append(node.order[:i], node.order[i+1:]...)
			break
		}
	}

	return true
}

func (node *Node) ChildCount() int {
	if nil == node {
		return 0
	}

	return len(node.children)
}

// ChildKeys returns the child characters in insertion order.
func (node *Node) ChildKeys() []rune {
	if nil == node {
		return nil
	}

	keys := make([]rune, len(node.order))
	copy(keys, node.order)
	return keys
}

// onlyChild returns the single child of node, or nil if node has zero
// or several children.
func (node *Node) onlyChild() *Node {
	if 1 != node.ChildCount() {
		return nil
	}

	return node.children[node.order[0]]
}

// stack is a simple LIFO used to assist in tree traversals.
type stack[E any] struct {
	items []E
}

func newStack[E any]() *stack[E] {
	return &stack[E]{
		items: make([]E, 0),
	}
}

func (s *stack[E]) Push(item E) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *stack[E]) Pop() (item E, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}

	item = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek returns a pointer to the top item, or nil on an empty stack.
func (s *stack[E]) Peek() *E {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

func (s *stack[E]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *stack[E]) Size() int {
	return len(s.items)
}
