package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"knownwords/classify"
	"knownwords/config"
	"knownwords/dictionary"
	"knownwords/ingest"
	"knownwords/logger"
	"knownwords/segment"
	"knownwords/tokenize"
)

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return classifyFiles(cmd.Context(), cfg, log, cmd.OutOrStdout())
}

func newTokenizer(cfg config.Config) (tokenize.Tokenizer, error) {
	if cfg.Tokenizer == "runs" {
		return tokenize.ScriptRuns{}, nil
	}
	return tokenize.NewKagome(cfg.Dict, cfg.Mode)
}

func loadKnownWords(cfg config.Config) (*dictionary.List, error) {
	r, closer, err := ingest.Open(cfg.KnownWords, cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("open known words: %w", err)
	}
	defer closer.Close()
	return dictionary.Load(r, cfg.Dictionary())
}

func classifyFiles(ctx context.Context, cfg config.Config, log zerolog.Logger, out io.Writer) error {
	list, err := loadKnownWords(cfg)
	if err != nil {
		return err
	}

	d := &display{w: out}
	c, err := classify.New(list, classify.Options{Progress: d.update, Log: log})
	if err != nil {
		return err
	}

	text, err := ingest.ReadFile(cfg.Text, cfg.Encoding)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	tk, err := newTokenizer(cfg)
	if err != nil {
		return err
	}
	segs, err := segment.NewPipeline(tk, log).Segments(ctx, text)
	if err != nil {
		return err
	}
	log.Info().Int("segments", len(segs)).Int("known_words", list.Len()).Msg("classifying")

	if cfg.Progress {
		d.start(len(segs))
	}
	rep, err := c.Run(ctx, segs)
	d.finish(rep.Tally)
	if err != nil {
		return err
	}

	if cfg.ListNew {
		for _, w := range rep.Tally.NewWords {
			fmt.Fprintln(out, w)
		}
	}
	if cfg.Report != "" {
		if err := logger.InitLogs(cfg.Report); err != nil {
			return fmt.Errorf("report dir: %w", err)
		}
		if err := logger.LogJSON(cfg.Report, "report", rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("dir", cfg.Report).Msg("report written")
	}
	return nil
}
