package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/camelinx/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordList = `# animals
cat
  car  

dog
`

func writeWordList(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(wordList), 0o600))
	return path
}

func TestLoadWords(t *testing.T) {
	ctx := context.Background()
	tr := trie.New(nil)

	n, err := loadWords(ctx, tr, strings.NewReader(wordList))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"cat", "car", "dog"}, tr.Words(ctx, "", trie.NoLimit))
	assert.False(t, tr.Has(ctx, "# animals"))
}

func TestLoadWordFile(t *testing.T) {
	ctx := context.Background()

	tr := trie.New(nil)
	n, err := loadWordFile(ctx, tr, writeWordList(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, tr.Has(ctx, "car"))

	tr = trie.New(nil)
	n, err = loadWordFile(ctx, tr, "-", strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, tr.Has(ctx, "y"))

	_, err = loadWordFile(ctx, tr, filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommands(t *testing.T) {
	path := writeWordList(t)

	run := func(args ...string) (string, error) {
		t.Helper()

		opts := &cliOptions{}
		cmd := newRootCmd(opts)

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append(args, "--file", path))
		err := cmd.Execute()

		require.Equal(t, []string{path}, opts.wordFiles, "flag values must not leak between runs")
		return out.String(), err
	}

	out, err := run("words", "ca", "--max=-1")
	require.NoError(t, err)
	assert.Equal(t, "cat\ncar\n", out)

	out, err = run("words", "--max", "2")
	require.NoError(t, err)
	assert.Equal(t, "cat\ncar\n", out)

	out, err = run("words")
	require.NoError(t, err)
	assert.Equal(t, "cat\ncar\ndog\n", out, "--max from an earlier run must not carry over")

	out, err = run("has", "dog", "cow")
	require.NoError(t, err)
	assert.Equal(t, "dog\ttrue\ncow\tfalse\n", out)

	_, err = run("has", "dog", "cow", "--strict")
	require.Error(t, err)

	out, err = run("prefix", "ca")
	require.NoError(t, err)
	assert.Equal(t, "prefix\ttrue\npure-prefix\ttrue\ncommon-prefix\tfalse\n", out)

	out, err = run("lcp")
	require.NoError(t, err)
	assert.Equal(t, "\"\"\n", out)

	out, err = run("stats")
	require.NoError(t, err)
	assert.Equal(t, "words\t3\nnodes\t7\nheight\t3\n", out)

	out, err = run("words", "og", "--suffix")
	require.NoError(t, err)
	assert.Equal(t, "dog\n", out)
}

func TestCommands_Stdin(t *testing.T) {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("Apple\napricot\n"))
	cmd.SetArgs([]string{"words", "AP", "--file", "-", "--ignore-case"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "apple\napricot\n", out.String())
}
