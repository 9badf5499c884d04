package trie

// Wrapper around Trie that stores every word reversed, so suffix queries run
// as prefix queries. Useful for domain names and file extensions.
// All methods take and return words in their natural order; "prefix" in a
// method name reads as "suffix".

import (
	"context"
)

type ReversedTrie struct {
	trie *Trie
	norm normalizer
}

// Returns a new reversed trie holding the given words
// Arguments:
//
//	words - initial vocabulary, added in order. Can be nil.
//	opts  - construction options
//
// Returns:
//
//	*ReversedTrie - the new trie
func NewReversed(words []string, opts ...Option) *ReversedTrie {
	rt, opts := newReversed(opts)
	rt.trie = New(nil, opts...)
	rt.addAll(words)
	return rt
}

// Returns a new reversed trie with custom lock handlers
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
//	*ReversedTrie - the new trie
func NewReversedWithLockHandlers(words []string, rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn, opts ...Option) *ReversedTrie {
	rt, opts := newReversed(opts)
	rt.trie = NewWithLockHandlers(nil, rlockFn, runlockFn, wlockFn, unlockFn, opts...)
	rt.addAll(words)
	return rt
}

// newReversed moves case folding and normalization out of the wrapped trie:
// both must see words in their natural order, so they run before reversal.
func newReversed(opts []Option) (*ReversedTrie, []Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := &ReversedTrie{
		norm: newNormalizer(cfg),
	}

	opts = append(opts, WithCaseSensitive(true), withoutNormalization())
	return rt, opts
}

func (rt *ReversedTrie) addAll(words []string) {
	ctx := context.Background()
	for _, word := range words {
		rt.Add(ctx, word)
	}
}

// reverse normalizes s and reverses it. ok is false for invalid UTF-8.
func (rt *ReversedTrie) reverse(s string) (string, bool) {
	s, ok := rt.norm.apply(s)
	if !ok {
		return "", false
	}

	return reverseString(s), true
}

// Reverses a string
// Arguments:
//
//	s - string to be reversed
//
// Returns:
//
//	string - reversed string
func reverseString(s string) string {
	// A rune slice is needed to properly handle multi-byte characters
	// Reversing a byte slice does not guarantee correct results for multi-byte characters
	sr := []rune(s)
	for i, j := 0, len(sr)-1; i < j; i, j = i+1, j-1 {
		sr[i], sr[j] = sr[j], sr[i]
	}

	return string(sr)
}

func (rt *ReversedTrie) Add(ctx context.Context, word string) bool {
	reversed, ok := rt.reverse(word)
	if !ok {
		return false
	}

	return rt.trie.Add(ctx, reversed)
}

func (rt *ReversedTrie) Has(ctx context.Context, word string) bool {
	reversed, ok := rt.reverse(word)
	if !ok {
		return false
	}

	return rt.trie.Has(ctx, reversed)
}

func (rt *ReversedTrie) Remove(ctx context.Context, word string) bool {
	reversed, ok := rt.reverse(word)
	if !ok {
		return false
	}

	return rt.trie.Remove(ctx, reversed)
}

func (rt *ReversedTrie) Height(ctx context.Context) int {
	return rt.trie.Height(ctx)
}

// Reports whether suffix ends at least one stored word without being a
// stored word itself.
func (rt *ReversedTrie) IsPurePrefix(ctx context.Context, suffix string) bool {
	reversed, ok := rt.reverse(suffix)
	if !ok {
		return false
	}

	return rt.trie.IsPurePrefix(ctx, reversed)
}

// Reports whether suffix is a stored word or a suffix of one.
func (rt *ReversedTrie) IsPrefix(ctx context.Context, suffix string) bool {
	reversed, ok := rt.reverse(suffix)
	if !ok {
		return false
	}

	return rt.trie.IsPrefix(ctx, reversed)
}

func (rt *ReversedTrie) IsCommonPrefix(ctx context.Context, suffix string) bool {
	reversed, ok := rt.reverse(suffix)
	if !ok {
		return false
	}

	return rt.trie.IsCommonPrefix(ctx, reversed)
}

// Returns the longest suffix shared by the whole vocabulary
func (rt *ReversedTrie) LongestCommonPrefix(ctx context.Context) string {
	return reverseString(rt.trie.LongestCommonPrefix(ctx))
}

// Returns the stored words ending with suffix, at most max of them
func (rt *ReversedTrie) Words(ctx context.Context, suffix string, max int) []string {
	reversed, ok := rt.reverse(suffix)
	if !ok {
		return make([]string, 0)
	}

	words := rt.trie.Words(ctx, reversed, max)
	for i, word := range words {
		words[i] = reverseString(word)
	}

	return words
}

func (rt *ReversedTrie) Walk(ctx context.Context, callback WalkerFn) error {
	if nil == callback {
		return ErrNoWalkerFunction
	}

	return rt.trie.Walk(ctx, func(ctx context.Context, word string) error {
		return callback(ctx, reverseString(word))
	})
}

func (rt *ReversedTrie) NodesCount(ctx context.Context) uint64 {
	return rt.trie.NodesCount(ctx)
}

func (rt *ReversedTrie) Len(ctx context.Context) int {
	return rt.trie.Len(ctx)
}

var (
	_ WordTrie = (*Trie)(nil)
	_ WordTrie = (*ReversedTrie)(nil)
)
