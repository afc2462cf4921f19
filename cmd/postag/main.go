// Command postag tags English text with part-of-speech tags and extracts
// candidate terms.
//
//	postag tag [file]        tag a file or stdin
//	postag tokenize [file]   print tokens and their spacing
//	postag serve             run the JSON HTTP API
//	postag pack <in> <out>   gzip a lexicon file
package main

import (
	"os"

	"github.com/spf13/cobra"

	"postag/internal/common"
	"postag/internal/config"
)

var (
	configPath string
	language   string
	lexiconDir string
	engineName string
	logLevel   string
	nfc        bool
)

var rootCmd = &cobra.Command{
	Use:           "postag",
	Short:         "Rule-based part-of-speech tagger for term extraction",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&language, "lang", "l", "", "lexicon language (default from config: english)")
	pf.StringVar(&lexiconDir, "lexicon-dir", "", "directory holding <lang>-lexicon.txt[.gz]")
	pf.StringVar(&engineName, "engine", "", "tagging engine: lexicon or perceptron")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&nfc, "nfc", false, "compose input to Unicode NFC before tokenizing")
}

// loadConfig merges the config file, environment and command-line flags,
// flags winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if language != "" {
		cfg.Language = language
	}
	if lexiconDir != "" {
		cfg.LexiconDir = lexiconDir
	}
	if engineName != "" {
		cfg.Engine = engineName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("nfc") {
		cfg.NFC = nfc
	}
	if err := common.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		common.FAIL("%v", err)
		os.Exit(1)
	}
}
