// Command budouxcat segments text read from a file or stdin into phrases,
// one per line, optionally wrapping onto multiple display lines at a given
// terminal width.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/budoux-go/budoux"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lang string
	var wrap int

	cmd := &cobra.Command{
		Use:   "budouxcat [file]",
		Short: "Segment text into phrase-boundary-aware lines",
		Long: `budouxcat reads UTF-8 text from a file (or stdin if no file is given),
segments it into phrases using the chosen language's score tables, and
prints one phrase per line. With --wrap, phrases are instead packed greedily
onto lines no wider than the given East-Asian display width; a phrase wider
than that is never split and gets a line of its own.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			l, err := budoux.ParseLanguage(lang)
			if err != nil {
				return err
			}
			spans := budoux.Segment(l, input)
			if wrap <= 0 {
				for _, s := range spans {
					fmt.Println(s)
				}
				return nil
			}
			return printWrapped(cmd.OutOrStdout(), spans, wrap)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "ja", "language model to use (ja, ja-knbc, th, zh-hans, zh-hant)")
	cmd.Flags().IntVar(&wrap, "wrap", 0, "greedily wrap phrases onto lines of at most this display width (0 disables wrapping)")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(bufio.NewReader(os.Stdin))
	}
	return os.ReadFile(args[0])
}

// printWrapped greedily packs phrases onto lines, never splitting a phrase,
// using runewidth's East-Asian width table so CJK phrases count as two
// columns per character the way a terminal renders them.
func printWrapped(w io.Writer, phrases []string, maxWidth int) error {
	var line strings.Builder
	lineWidth := 0

	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
		line.Reset()
		lineWidth = 0
		return nil
	}

	for _, p := range phrases {
		pw := runewidth.StringWidth(p)
		if lineWidth > 0 && lineWidth+pw > maxWidth {
			if err := flush(); err != nil {
				return err
			}
		}
		line.WriteString(p)
		lineWidth += pw
	}
	return flush()
}
