package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"postag/internal/common"
	"postag/internal/tokenizer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print the tokens of a file or stdin",
	Long: `Print one token per line followed by "+" when it was followed by
whitespace in the input, then the text rebuilt from the tokens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}

	opts := []tokenizer.Option{tokenizer.WithMatchTimeout(cfg.MatchTimeout)}
	if cfg.NFC {
		opts = append(opts, tokenizer.WithNFC())
	}
	split, terms := tokenizer.NewTermTokenizer(opts...).Tokenize(text)

	out := cmd.OutOrStdout()
	for i, t := range terms {
		mark := ""
		if split[i] {
			mark = "+"
		}
		fmt.Fprintf(out, "%s\t%s\n", t, mark)
	}
	fmt.Fprintln(out, common.JoinSpaced(terms, split))
	return nil
}
