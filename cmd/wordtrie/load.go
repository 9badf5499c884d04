package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/camelinx/trie"
)

// loadWordFile adds the words of the file at path to t. "-" reads stdin.
// Returns the number of words read.
func loadWordFile(ctx context.Context, t trie.WordTrie, path string, stdin io.Reader) (int, error) {
	if path == "-" {
		return loadWords(ctx, t, stdin)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	n, err := loadWords(ctx, t, f)
	if err != nil {
		return n, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	return n, nil
}

// loadWords adds one word per line from r. Blank lines and lines starting
// with # are skipped; surrounding whitespace is trimmed.
func loadWords(ctx context.Context, t trie.WordTrie, r io.Reader) (int, error) {
	n := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}

		t.Add(ctx, word)
		n++
	}

	return n, scanner.Err()
}
