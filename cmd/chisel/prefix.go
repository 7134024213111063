package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chisel-web/chisel/compiler/compat"
	"github.com/chisel-web/chisel/compiler/prefixer"
	"github.com/chisel-web/chisel/internal/cli/config"
	"github.com/chisel-web/chisel/internal/csstext"
)

var prefixWrite bool

var prefixCmd = &cobra.Command{
	Use:   "prefix <file.css>",
	Short: "Add legacy vendor prefixes to a stylesheet",
	Long: `Reads a stylesheet, inserts the vendor-prefixed fallbacks required by
the configured browser targets (chisel.yml "targets"), and prints the
result. With --write the file is updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		targets, err := cfg.ResolveTargets()
		if err != nil {
			return err
		}

		output, err := prefixFile(args[0], targets)
		if err != nil {
			return err
		}

		if prefixWrite {
			return os.WriteFile(args[0], []byte(output), 0o644)
		}

		fmt.Print(output)
		return nil
	},
}

func init() {
	prefixCmd.Flags().BoolVar(&prefixWrite, "write", false, "rewrite the file in place")
}

func prefixFile(path string, targets compat.Versions) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	sheet := csstext.Parse(string(source))
	prefixer.New(prefixer.Options{Env: targets}).Process(sheet)

	return csstext.Print(sheet), nil
}
