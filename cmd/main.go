// Package main provides the CLI entrypoint for the bolted joint analyser.
// It wires subcommands (analyze, report), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"boltjoint/internal/analysis"
	"boltjoint/internal/config"
	"boltjoint/pkg/logger"
	"boltjoint/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "boltjoint",
		Short:        "Preload, load sharing and factors of safety of a bolted joint",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(discard{})
	_ = flag.CommandLine.Parse(configArgs(os.Args[1:]))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("could not load .env file:", err)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	recorder := metrics.New(prometheus.NewRegistry())
	analyzer := analysis.New(recorder, analysis.NewOptions(cfg))

	rootCmd.AddCommand(
		analyzeCommand(cfg, analyzer),
		reportCommand(cfg, analyzer),
	)

	err = rootCmd.ExecuteContext(ctx)
	if cfg.Metrics.Textfile != "" {
		if werr := recorder.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logger.Warn(ctx, "could not write metrics textfile", zap.Error(werr))
		}
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs keeps only the -c/--config flag so the standard flag package
// does not trip over subcommands and their flags.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-c" || a == "--config":
			out = append(out, "-c")
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		case len(a) > 3 && a[:3] == "-c=":
			out = append(out, a)
		case len(a) > 9 && a[:9] == "--config=":
			out = append(out, "-c="+a[9:])
		}
	}

	return out
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
