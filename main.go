package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zyntax/nlp"
)

var (
	flagConfigDir string
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:     "zyntax",
	Short:   "An NLP-powered terminal that turns plain English into shell commands",
	Version: GetVersionShort(),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(flagConfigDir)
		if err != nil {
			return err
		}
		if app.History != nil {
			defer app.History.Close()
		}
		return runInteractiveLoop(app)
	},
}

var fetchPackCmd = &cobra.Command{
	Use:   "fetch-pack <name>",
	Short: "Download a phrase pack into the local phrases directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := NewConfigManager(flagConfigDir)
		if err != nil {
			return err
		}
		if err := cm.Initialize(); err != nil {
			return err
		}
		fetcher := NewPhrasePackFetcher(cm.Config().PhrasePackBaseURL, cm.PhrasePackDir())
		dest, err := fetcher.Fetch(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Saved phrase pack to %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.config/zyntax)")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "disable persistent prompt history")
	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")
	rootCmd.AddCommand(fetchPackCmd)
}

// buildApp constructs every session-lifetime resource explicitly:
// config, catalog (with phrase packs applied), NLP engine, matcher,
// extractor, executor, history. Failures here abort before the prompt
// is ever shown.
func buildApp(configDir string) (*App, error) {
	cm, err := NewConfigManager(configDir)
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(); err != nil {
		return nil, err
	}
	cfg := cm.Config()

	catalog, err := NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("invalid command catalog: %v", err)
	}

	if cfg.PhrasePacksEnabled {
		packs, err := LoadPhrasePackDir(cm.PhrasePackDir())
		if err != nil {
			return nil, err
		}
		for _, pack := range packs {
			if err := catalog.ApplyPhrasePack(pack); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	engine := nlp.NewEngine()
	extractor := NewEntityExtractor(engine)
	matcher := NewIntentMatcher(catalog, engine, MatcherConfig{
		AcceptThreshold:  cfg.AcceptThreshold,
		SuggestThreshold: cfg.SuggestThreshold,
		MaxSuggestions:   cfg.MaxSuggestions,
	})

	dispatcher := NewDispatcher(catalog, extractor, matcher, NewSystemExecutor(), CurrentOS(), os.Stdout)
	dispatcher.SetPassthrough(cfg.PassthroughEnabled)

	app := &App{
		Config:     cfg,
		Catalog:    catalog,
		Dispatcher: dispatcher,
	}

	if cfg.HistoryEnabled && !flagNoHistory {
		history, err := NewHistoryStore(cm.HistoryPath(), cfg.HistoryLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			app.History = history
		}
	}

	return app, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
