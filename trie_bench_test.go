package trie

import (
	"context"
	"fmt"
	"testing"
)

func generateWords(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("word_%d", i)
	}
	return words
}

// BenchmarkAdd benchmarks inserting distinct words into the trie
func BenchmarkAdd(b *testing.B) {
	ctx := context.Background()
	tr := New(nil)
	words := generateWords(b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Add(ctx, words[i])
	}
}

// BenchmarkHas benchmarks membership tests in a pre-populated trie
func BenchmarkHas(b *testing.B) {
	ctx := context.Background()
	words := generateWords(b.N)
	tr := New(words)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Has(ctx, words[i])
	}
}

// BenchmarkHasCaseInsensitive benchmarks membership tests with case folding
func BenchmarkHasCaseInsensitive(b *testing.B) {
	ctx := context.Background()
	words := generateWords(b.N)
	tr := New(words, WithCaseSensitive(false))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Has(ctx, words[i])
	}
}

// BenchmarkRemove benchmarks removals from a pre-populated trie
func BenchmarkRemove(b *testing.B) {
	ctx := context.Background()
	words := generateWords(b.N)
	tr := New(words)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Remove(ctx, words[i])
	}
}

// BenchmarkWords benchmarks bounded prefix enumeration
func BenchmarkWords(b *testing.B) {
	ctx := context.Background()
	tr := New(generateWords(100000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Words(ctx, "word_1", 10)
	}
}
