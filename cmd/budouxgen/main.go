// Command budouxgen compiles models/*.json score files into the
// package model Go source files the segmenter runtime links against.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/budoux-go/budoux/internal/modelcompile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var modelsDir, outDir string
	var langs []string

	cmd := &cobra.Command{
		Use:   "budouxgen",
		Short: "Compile BudouX JSON score tables into Go source",
		Long: `budouxgen reads one JSON score file per language from --models-dir and
writes a generated model package file for each into --out-dir, ready to be
committed and imported by the segmenter runtime.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := modelcompile.DefaultLangs
			if len(langs) > 0 {
				filtered := make([]modelcompile.LangSpec, 0, len(langs))
				for _, want := range langs {
					found := false
					for _, spec := range specs {
						if spec.VarName == want {
							filtered = append(filtered, spec)
							found = true
							break
						}
					}
					if !found {
						return fmt.Errorf("budouxgen: unknown --lang %q", want)
					}
				}
				specs = filtered
			}
			return modelcompile.Compile(modelsDir, outDir, specs)
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models-dir", "models", "directory holding <lang>.json score files")
	cmd.Flags().StringVar(&outDir, "out-dir", "model", "directory to write generated <lang>.go files into")
	cmd.Flags().StringSliceVar(&langs, "lang", nil, "restrict compilation to these model.Model var names (default: all)")

	return cmd
}
