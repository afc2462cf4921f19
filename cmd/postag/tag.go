package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"postag/internal/engine"
	"postag/internal/types"
)

var (
	tagJSON   bool
	tagFilter engine.FilterOptions
)

var tagCmd = &cobra.Command{
	Use:   "tag [file]",
	Short: "Tag text read from a file or stdin",
	Long: `Tag text with part-of-speech tags.

Each token is printed as "term<TAB>tag<TAB>normalized". With any of
--nouns, --stopwords, --lowercase or --stem only the filtered candidate
terms are printed.

Examples:
  echo "The cats can really run." | postag tag
  postag tag --nouns --stopwords --stem article.txt
  postag tag --json --engine perceptron article.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().BoolVar(&tagJSON, "json", false, "print the result as JSON")
	tagCmd.Flags().BoolVar(&tagFilter.Nouns, "nouns", false, "keep only nouns")
	tagCmd.Flags().BoolVar(&tagFilter.Stopwords, "stopwords", false, "drop English stopwords")
	tagCmd.Flags().BoolVar(&tagFilter.Lowercase, "lowercase", false, "lowercase normalized forms")
	tagCmd.Flags().BoolVar(&tagFilter.Stem, "stem", false, "replace normalized forms with their Snowball stem")
}

func runTag(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	e, err := engine.New(cfg, tagFilter)
	if err != nil {
		return err
	}

	res := e.Process(text)
	out := cmd.OutOrStdout()
	if tagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	terms := res.Terms
	if res.Candidates != nil {
		terms = res.Candidates
	}
	return printTerms(out, terms)
}

func printTerms(w io.Writer, terms []types.TaggedTerm) error {
	for _, t := range terms {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", t.Term, t.Tag, t.Norm); err != nil {
			return err
		}
	}
	return nil
}
