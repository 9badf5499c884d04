package trie

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// Trie stores a vocabulary of words, one character per tree level, and
// answers membership and prefix queries over it.
//
// A Trie does no locking of its own. Callers sharing one between goroutines
// either serialize access themselves or install lock handlers with
// NewWithLockHandlers: mutating operations then take the write lock and
// queries the read lock.
type Trie struct {
	root *Node

	numNodes uint64
	numWords int

	norm   normalizer
	logger zerolog.Logger

	rlockFn   ReadLockFn
	runlockFn ReadUnlockFn
	wlockFn   WriteLockFn
	unlockFn  UnlockFn
}

var errStopWalk = errors.New("stop walk")

// Returns a new trie holding the given words
// Arguments:
//
//	words - initial vocabulary, added in order. Can be nil.
//	opts  - construction options
//
// Returns:
//
//	*Trie - the new trie
func New(words []string, opts ...Option) *Trie {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Trie{
		root:      NewNode(""),
		norm:      newNormalizer(cfg),
		logger:    cfg.logger,
		rlockFn:   cfg.rlockFn,
		runlockFn: cfg.runlockFn,
		wlockFn:   cfg.wlockFn,
		unlockFn:  cfg.unlockFn,
	}

	ctx := context.Background()
	for _, word := range words {
		t.Add(ctx, word)
	}

	return t
}

// Returns a new trie with custom lock handlers
// Arguments:
//
//	words     - initial vocabulary, added in order. Can be nil.
//	rlockFn   - read lock function
//	runlockFn - read unlock function
//	wlockFn   - write lock function
//	unlockFn  - unlock function
//	opts      - construction options
//
// Returns:
//
//	*Trie - the new trie
func NewWithLockHandlers(words []string, rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn, opts ...Option) *Trie {
	opts = append(opts, withLockHandlers(rlockFn, runlockFn, wlockFn, unlockFn))
	return New(words, opts...)
}

func (t *Trie) rlock(ctx context.Context) {
	if nil != t.rlockFn {
		t.rlockFn(ctx)
	}
}

func (t *Trie) runlock(ctx context.Context) {
	if nil != t.runlockFn {
		t.runlockFn(ctx)
	}
}

func (t *Trie) wlock(ctx context.Context) {
	if nil != t.wlockFn {
		t.wlockFn(ctx)
	}
}

func (t *Trie) unlock(ctx context.Context) {
	if nil != t.unlockFn {
		t.unlockFn(ctx)
	}
}

// Root returns the root node. It is meant for inspection; modifying the
// tree through it bypasses the node and word counters.
func (t *Trie) Root() *Node {
	return t.root
}

// Adds a word to the trie. Adding a word that is already present is a no-op.
// The empty word marks the root terminal.
// Arguments:
//
//	ctx  - context for the operation
//	word - word to add
//
// Returns:
//
//	bool - false if word is not valid UTF-8, true otherwise
func (t *Trie) Add(ctx context.Context, word string) bool {
	word, ok := t.norm.apply(word)
	if !ok {
		t.logger.Debug().Msg("rejected invalid utf-8 word")
		return false
	}

	t.wlock(ctx)
	defer t.unlock(ctx)

	created := 0

	node := t.root
	for _, c := range word {
		next := node.Child(c)
		if nil == next {
			next = NewNode(string(c))
			node.SetChild(c, next)
			created++
		}

		node = next
	}

	t.numNodes += uint64(created)

	if !node.IsTerminal() {
		node.MarkTerminal()
		t.numWords++
	}

	if created > 0 {
		t.logger.Debug().Str("word", word).Int("created", created).Msg("added nodes")
	}

	return true
}

// Caller must lock
func (t *Trie) find(word string) *Node {
	node := t.root
	for _, c := range word {
		node = node.Child(c)
		if nil == node {
			return nil
		}
	}

	return node
}

// Reports whether word was added and not removed since.
func (t *Trie) Has(ctx context.Context, word string) bool {
	word, ok := t.norm.apply(word)
	if !ok {
		return false
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.find(word).IsTerminal()
}

type pathStep struct {
	parent *Node
	c      rune
}

// Removes a word from the trie and prunes every node on its path that no
// longer leads to a stored word.
// Arguments:
//
//	ctx  - context for the operation
//	word - word to remove
//
// Returns:
//
//	bool - true if the word was present and has been removed
func (t *Trie) Remove(ctx context.Context, word string) bool {
	word, ok := t.norm.apply(word)
	if !ok {
		return false
	}

	t.wlock(ctx)
	defer t.unlock(ctx)

	path := newStack[pathStep]()

	node := t.root
	for _, c := range word {
		child := node.Child(c)
		if nil == child {
			return false
		}

		path.Push(pathStep{parent: node, c: c})
		node = child
	}

	if !node.IsTerminal() {
		return false
	}

	node.UnmarkTerminal()
	t.numWords--

	// Unwind towards the root while the current node is dead weight.
	pruned := 0
	for !node.IsTerminal() && node.IsLeaf() {
		step, ok := path.Pop()
		if !ok {
			break
		}

		step.parent.DeleteChild(step.c)
		pruned++
		node = step.parent
	}

	t.numNodes -= uint64(pruned)

	t.logger.Debug().Str("word", word).Int("pruned", pruned).Msg("removed word")

	return true
}

// Returns the length of the longest path from the root. A trie holding
// only the root has height 0.
func (t *Trie) Height(ctx context.Context) int {
	t.rlock(ctx)
	defer t.runlock(ctx)

	height := 0

	level := []*Node{t.root}
	for {
		var next []*Node
		for _, node := range level {
			for _, c := range node.order {
				next = append(next, node.children[c])
			}
		}

		if 0 == len(next) {
			return height
		}

		height++
		level = next
	}
}

// Reports whether input leads to at least one stored word without being
// a stored word itself.
func (t *Trie) IsPurePrefix(ctx context.Context, input string) bool {
	input, ok := t.norm.apply(input)
	if !ok {
		return false
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	node := t.find(input)
	return nil != node && !node.IsTerminal()
}

// Reports whether input is a stored word or a prefix of one.
func (t *Trie) IsPrefix(ctx context.Context, input string) bool {
	input, ok := t.norm.apply(input)
	if !ok {
		return false
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	return nil != t.find(input)
}

// descendCommon walks from the root while the current node is not terminal
// and has exactly one child, passing the accumulated key path at every
// visited node to visit. It stops early when visit returns false.
// Caller must lock
func (t *Trie) descendCommon(visit func(string) bool) string {
	var sb strings.Builder

	node := t.root
	for nil != node {
		sb.WriteString(node.Key())
		if !visit(sb.String()) {
			break
		}

		if node.IsTerminal() {
			break
		}

		node = node.onlyChild()
	}

	return sb.String()
}

// Reports whether input lies on the unbranching path shared by every stored
// word, i.e. whether it is the longest common prefix or a prefix of it.
func (t *Trie) IsCommonPrefix(ctx context.Context, input string) bool {
	input, ok := t.norm.apply(input)
	if !ok {
		return false
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	found := false
	t.descendCommon(func(common string) bool {
		found = common == input
		return !found && len(common) < len(input)
	})

	return found
}

// Returns the longest prefix shared by the whole vocabulary. The descent
// stops at the first stored word or branch point.
func (t *Trie) LongestCommonPrefix(ctx context.Context) string {
	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.descendCommon(func(string) bool { return true })
}

type walkFrame struct {
	node *Node
	word string
	next int
}

// walk visits the terminal nodes below start in post-order: every child
// subtree in insertion order, then start itself.
// Caller must lock
func (t *Trie) walk(start *Node, prefix string, fn func(string) error) error {
	frames := newStack[walkFrame]()
	frames.Push(walkFrame{node: start, word: prefix})

	for !frames.IsEmpty() {
		top := frames.Peek()
		if top.next < len(top.node.order) {
			c := top.node.order[top.next]
			top.next++

			frames.Push(walkFrame{node: top.node.children[c], word: top.word + string(c)})
			continue
		}

		frame, _ := frames.Pop()
		if frame.node.IsTerminal() {
			if err := fn(frame.word); err != nil {
				return err
			}
		}
	}

	return nil
}

// Returns the stored words starting with prefix
// Arguments:
//
//	ctx    - context for the operation
//	prefix - prefix to enumerate from. The empty prefix enumerates the whole
//	         vocabulary.
//	max    - maximum number of words to return, NoLimit for all of them
//
// Returns:
//
//	[]string - matching words, empty if prefix is not in the trie
func (t *Trie) Words(ctx context.Context, prefix string, max int) []string {
	words := make([]string, 0)
	if 0 == max {
		return words
	}

	prefix, ok := t.norm.apply(prefix)
	if !ok {
		return words
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	start := t.find(prefix)
	if nil == start {
		return words
	}

	err := t.walk(start, prefix, func(word string) error {
		words = append(words, word)
		if max > 0 && len(words) >= max {
			return errStopWalk
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		t.logger.Error().Err(err).Str("prefix", prefix).Msg("word enumeration failed")
	}

	return words
}

// Walk the trie and call passed function for every stored word, in the
// order Words returns them. callback must not modify the trie.
// Arguments:
//
//	ctx      - context for the operation
//	callback - function to be called for every word in the trie
//
// Returns:
//
//	err - nil if successful, else the first error returned by callback
func (t *Trie) Walk(ctx context.Context, callback WalkerFn) error {
	if nil == callback {
		return ErrNoWalkerFunction
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.walk(t.root, "", func(word string) error {
		return callback(ctx, word)
	})
}

// Returns the number of nodes in the trie, root excluded
func (t *Trie) NodesCount(ctx context.Context) uint64 {
	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.numNodes
}

// Returns the number of stored words
func (t *Trie) Len(ctx context.Context) int {
	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.numWords
}
