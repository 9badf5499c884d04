package trie

import (
	"context"
	"errors"
)

// NoLimit disables the result cap of Words.
const NoLimit = -1

type ReadLockFn func(context.Context)
type ReadUnlockFn func(context.Context)
type WriteLockFn func(context.Context)
type UnlockFn func(context.Context)

// WalkerFn is called once per stored word. Returning an error stops the walk.
type WalkerFn func(context.Context, string) error

// WordTrie is the set of word and prefix queries shared by Trie and
// ReversedTrie. For a ReversedTrie every "prefix" is read as a suffix:
// IsPrefix tests a suffix, LongestCommonPrefix returns the longest common
// suffix and Words enumerates by suffix.
type WordTrie interface {
	Add(context.Context, string) bool
	Has(context.Context, string) bool
	Remove(context.Context, string) bool
	Height(context.Context) int
	IsPurePrefix(context.Context, string) bool
	IsPrefix(context.Context, string) bool
	IsCommonPrefix(context.Context, string) bool
	LongestCommonPrefix(context.Context) string
	Words(context.Context, string, int) []string
	Walk(context.Context, WalkerFn) error
	NodesCount(context.Context) uint64
	Len(context.Context) int
}

var (
	ErrNoWalkerFunction = errors.New("no walker function provided")
)
