package main

import (
	"fmt"
	"strconv"

	"github.com/camelinx/trie"
	"github.com/spf13/cobra"
)

// newHasCmd reports membership of every argument
func newHasCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has WORD...",
		Short: "Check whether words are in the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.buildTrie(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			missing := 0
			for _, word := range args {
				found := t.Has(cmd.Context(), word)
				if !found {
					missing++
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", word, found)
			}

			if opts.strict && missing > 0 {
				return fmt.Errorf("%d of %d words not found", missing, len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if any word is missing")
	return cmd
}

// newWordsCmd lists words sharing a prefix (or suffix with --suffix)
func newWordsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [PREFIX]",
		Short: "List words starting with PREFIX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.buildTrie(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			for _, word := range t.Words(cmd.Context(), prefix, opts.maxWords) {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.maxWords, "max", "n", trie.NoLimit, "maximum number of words, negative for all")
	return cmd
}

// newPrefixCmd classifies its argument against the word list
func newPrefixCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix INPUT",
		Short: "Classify INPUT as a prefix of the word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.buildTrie(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prefix\t%t\n", t.IsPrefix(ctx, args[0]))
			fmt.Fprintf(out, "pure-prefix\t%t\n", t.IsPurePrefix(ctx, args[0]))
			fmt.Fprintf(out, "common-prefix\t%t\n", t.IsCommonPrefix(ctx, args[0]))

			return nil
		},
	}
}

// newLcpCmd prints the longest prefix shared by all words
func newLcpCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lcp",
		Short: "Print the longest common prefix of the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.buildTrie(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(t.LongestCommonPrefix(cmd.Context())))
			return nil
		},
	}
}

// newStatsCmd prints structural counters
func newStatsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print word count, node count and height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.buildTrie(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words\t%d\n", t.Len(ctx))
			fmt.Fprintf(out, "nodes\t%d\n", t.NodesCount(ctx))
			fmt.Fprintf(out, "height\t%d\n", t.Height(ctx))

			return nil
		},
	}
}
