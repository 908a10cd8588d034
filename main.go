package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"knownwords/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "knownwords",
		Short: "Count how much of a Japanese text you already know",
		Long: `knownwords splits a Japanese text into candidate vocabulary items and checks each
one against your known-word list, allowing for conjugation, compounds and particles.

It prints how many unique words are known and lists the new ones.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initConfig,
		RunE:              run,
		SilenceUsage:      true,
	}
)

func init() {
	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/knownwords/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	flags.StringP("known-words", "k", "", "path to the known-word list")
	flags.StringP("text", "t", "", "path to the Japanese text")
	flags.StringP("delimiter", "d", `\t`, "column delimiter of the known-word list")
	flags.IntP("column", "c", 0, "0-based column holding the word")
	flags.String("encoding", "utf-8", "input encoding (utf-8, shift_jis, euc-jp)")
	flags.String("tokenizer", "kagome", "first-pass tokenizer (kagome, runs)")
	flags.String("dict", "ipa", "kagome system dictionary (ipa, uni)")
	flags.String("mode", "normal", "kagome mode (normal, search, extended)")
	flags.String("report", "", "directory to write a JSON report to")
	flags.Bool("progress", true, "show the live summary line")
	flags.Bool("list-new", false, "print every new word after the summary")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	for key, flag := range map[string]string{
		config.KeyKnownWords: "known-words",
		config.KeyText:       "text",
		config.KeyDelimiter:  "delimiter",
		config.KeyColumn:     "column",
		config.KeyEncoding:   "encoding",
		config.KeyTokenizer:  "tokenizer",
		config.KeyDict:       "dict",
		config.KeyMode:       "mode",
		config.KeyReport:     "report",
		config.KeyProgress:   "progress",
		config.KeyListNew:    "list-new",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
	config.SetDefaults(viper.GetViper())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(fmt.Sprintf("%s/.config/knownwords", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
