package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"postag/internal/codec"
	"postag/internal/common"
	"postag/internal/lexicon"
)

var packCmd = &cobra.Command{
	Use:   "pack <lexicon.txt> <lexicon.txt.gz>",
	Short: "Validate a lexicon file and write it gzip-compressed",
	Args:  cobra.ExactArgs(2),
	RunE:  runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func runPack(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read lexicon: %w", err)
	}
	lex, err := lexicon.Parse(args[0], bytes.NewReader(data))
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	gc := codec.NewGzipCodec()
	gc.BindW(f)
	n, err := gc.Encode(data)
	if err != nil {
		return fmt.Errorf("compress lexicon: %w", err)
	}
	common.INFO("packed %d terms: %d -> %d bytes", lex.Len(), len(data), n)
	return f.Close()
}
