package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chisel-web/chisel/internal/cli/config"
	"github.com/chisel-web/chisel/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-prefix stylesheets whenever they change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		targets, err := cfg.ResolveTargets()
		if err != nil {
			return err
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			logger = zap.NewNop()
		}
		defer logger.Sync()

		fw, err := watch.NewFileWatcher([]string{".css"}, logger, func(files []string) error {
			for _, file := range files {
				before, err := os.ReadFile(file)
				if err != nil {
					logger.Warn("skipping file", zap.String("file", file), zap.Error(err))
					continue
				}
				output, err := prefixFile(file, targets)
				if err != nil {
					logger.Warn("skipping file", zap.String("file", file), zap.Error(err))
					continue
				}
				// Writing an unchanged file would retrigger the watcher.
				if output == string(before) {
					continue
				}
				if err := os.WriteFile(file, []byte(output), 0o644); err != nil {
					return err
				}
				logger.Info("prefixed", zap.String("file", file))
			}
			return nil
		})
		if err != nil {
			return err
		}

		if err := fw.Start(root); err != nil {
			return err
		}
		defer fw.Stop()

		fmt.Printf("Watching %s for stylesheet changes. Press Ctrl+C to stop.\n", root)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		return nil
	},
}
