package main

import (
	"context"
	"io"

	"github.com/camelinx/trie"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cliOptions holds the flag values of one command tree.
type cliOptions struct {
	wordFiles  []string
	ignoreCase bool
	suffixMode bool
	verbose    bool

	strict   bool
	maxWords int

	logger zerolog.Logger
}

// newRootCmd builds the command tree bound to opts.
func newRootCmd(opts *cliOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wordtrie",
		Short:        "Query a word list through a prefix tree",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}

			opts.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().StringArrayVarP(&opts.wordFiles, "file", "f", nil, "word list, one word per line (repeatable, - for stdin)")
	rootCmd.PersistentFlags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "fold case of words and queries")
	rootCmd.PersistentFlags().BoolVar(&opts.suffixMode, "suffix", false, "match suffixes instead of prefixes")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newHasCmd(opts))
	rootCmd.AddCommand(newWordsCmd(opts))
	rootCmd.AddCommand(newPrefixCmd(opts))
	rootCmd.AddCommand(newLcpCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))

	return rootCmd
}

// buildTrie loads every --file into a new trie configured by the global flags.
func (opts *cliOptions) buildTrie(ctx context.Context, stdin io.Reader) (trie.WordTrie, error) {
	trieOpts := []trie.Option{
		trie.WithCaseSensitive(!opts.ignoreCase),
		trie.WithLogger(opts.logger),
	}

	var t trie.WordTrie
	if opts.suffixMode {
		t = trie.NewReversed(nil, trieOpts...)
	} else {
		t = trie.New(nil, trieOpts...)
	}

	for _, path := range opts.wordFiles {
		n, err := loadWordFile(ctx, t, path, stdin)
		if err != nil {
			return nil, err
		}

		opts.logger.Debug().Str("file", path).Int("words", n).Msg("loaded word list")
	}

	opts.logger.Debug().Int("words", t.Len(ctx)).Uint64("nodes", t.NodesCount(ctx)).Msg("trie ready")

	return t, nil
}
