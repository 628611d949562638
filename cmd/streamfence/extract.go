package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gubarz/streamfence/internal/config"
	"github.com/gubarz/streamfence/internal/output"
	"github.com/gubarz/streamfence/internal/segment"
	"github.com/spf13/cobra"
)

// errNoBlock is returned when the input holds no closed block
var errNoBlock = errors.New("no complete code block found")

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print or copy finished code blocks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolP("all", "a", false, "Extract every closed block, not just the first")
	extractCmd.Flags().BoolP("body", "b", false, "Strip the fence lines")
	extractCmd.Flags().String("lang", "", "Only extract blocks with this language")
	extractCmd.Flags().Bool("copy", false, "Copy to clipboard (shorthand for output: copy)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(string(output.ModeCopy))
	}
	mode, err := output.ParseMode(config.GetOutput())
	if err != nil {
		return err
	}
	opts, err := config.FenceOptions()
	if err != nil {
		return err
	}
	buffer, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	splitter, err := segment.NewSplitter(opts)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	body, _ := cmd.Flags().GetBool("body")
	lang, _ := cmd.Flags().GetString("lang")

	text, err := extractBlocks(splitter.Blocks(buffer), all, body, lang)
	if err != nil {
		return err
	}
	return output.NewSink(cmd.OutOrStdout()).Deliver(text, mode)
}

// extractBlocks selects and joins blocks for delivery
func extractBlocks(blocks []segment.Segment, all, body bool, lang string) (string, error) {
	var parts []string
	for _, b := range blocks {
		if lang != "" && !strings.EqualFold(b.Language, lang) {
			continue
		}
		if body {
			parts = append(parts, b.Body())
		} else {
			parts = append(parts, b.Raw)
		}
		if !all {
			break
		}
	}
	if len(parts) == 0 {
		if lang != "" {
			return "", fmt.Errorf("%w with language %q", errNoBlock, lang)
		}
		return "", errNoBlock
	}
	return strings.Join(parts, "\n"), nil
}
