package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("command failed", zap.Error(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{
		configPath: os.Getenv("CONFIG_PATH"),
	}
	if opts.configPath == "" {
		opts.configPath = "./configs/config.yaml"
	}

	root := &cobra.Command{
		Use:           "toolfinder",
		Short:         "AI tool directory with language model search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to config file")

	root.AddCommand(
		newServeCmd(&opts),
		newMigrateCmd(&opts),
		newSeedCmd(&opts),
	)

	return root
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
