package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chisel-web/chisel/compiler/diag"
	"github.com/chisel-web/chisel/compiler/lexer"
	"github.com/chisel-web/chisel/internal/cli/config"
	"github.com/chisel-web/chisel/internal/cli/ui"
)

var tokenizeJSON bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.html>",
	Short: "Tokenize an HTML file and report parse errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		l := lexer.New(lexer.NewStringInput(string(source)))
		tokens := l.All()
		diags := lexDiagnostics(l.TakeErrors())

		if tokenizeJSON || cfg.Output.JSON {
			out := struct {
				Tokens      []string          `json:"tokens"`
				Diagnostics []diag.Diagnostic `json:"diagnostics"`
			}{Diagnostics: diags}
			for _, tok := range tokens {
				out.Tokens = append(out.Tokens, tok.String())
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		for _, tok := range tokens {
			fmt.Println(tok)
		}
		ui.WriteDiagnostics(os.Stderr, diags, ui.DiagnosticOptions{
			Source:  string(source),
			File:    args[0],
			NoColor: !cfg.Output.Color,
		})

		return nil
	},
}

func init() {
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "emit tokens and diagnostics as JSON")
}

func lexDiagnostics(errs []lexer.Error) []diag.Diagnostic {
	diags := make([]diag.Diagnostic, 0, len(errs))
	for _, e := range errs {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.Warning,
			Code:     e.Kind.String(),
			Message:  e.Kind.String(),
			Span:     e.Span,
		})
	}
	return diags
}
