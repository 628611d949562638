package main

import (
	"fmt"
	"io"

	"github.com/gubarz/streamfence/internal/config"
	"github.com/gubarz/streamfence/internal/fence"
	"github.com/gubarz/streamfence/internal/segment"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Report complete and pending fenced blocks in a buffer",
	Long: `Treats the whole input as the current streaming buffer and reports the
first complete block, the trailing pending block and the fence state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("format", "f", "", "Output format: text, yaml")
	scanCmd.Flags().BoolP("segments", "s", false, "Include the full text/code segmentation")
	scanCmd.Flags().StringP("pattern", "p", "", "Also report the first match of this regular expression")
}

// scanReport is the result of one scan
type scanReport struct {
	State    string            `yaml:"state"`
	Complete *fence.Match      `yaml:"complete"`
	Partial  *fence.Match      `yaml:"partial"`
	Pattern  *fence.Match      `yaml:"pattern,omitempty"`
	Segments []segment.Segment `yaml:"segments,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		config.SetFormat(f)
	}
	format := config.GetFormat()
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unsupported format: %s (supported: text, yaml)", format)
	}

	opts, err := config.FenceOptions()
	if err != nil {
		return err
	}
	buffer, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pattern, _ := cmd.Flags().GetString("pattern")
	withSegments, _ := cmd.Flags().GetBool("segments")
	report, err := buildReport(buffer, opts, pattern, withSegments)
	if err != nil {
		return err
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	}
	writeTextReport(cmd.OutOrStdout(), report)
	return nil
}

func buildReport(buffer string, opts fence.Options, pattern string, withSegments bool) (*scanReport, error) {
	complete, err := fence.NewCompleteMatcher(opts)
	if err != nil {
		return nil, err
	}
	partial, err := fence.NewPartialMatcher(opts)
	if err != nil {
		return nil, err
	}
	state, err := fence.Classify(buffer, opts)
	if err != nil {
		return nil, err
	}

	report := &scanReport{State: state.String()}
	if m, ok := complete(buffer); ok {
		report.Complete = &m
	}
	if m, ok := partial(buffer); ok {
		report.Partial = &m
	}
	if pattern != "" {
		matcher, err := fence.CompileMatcher(pattern)
		if err != nil {
			return nil, err
		}
		if m, ok := matcher(buffer); ok {
			report.Pattern = &m
		}
	}
	if withSegments {
		splitter, err := segment.NewSplitter(opts)
		if err != nil {
			return nil, err
		}
		report.Segments = splitter.Split(buffer)
	}
	return report, nil
}

func writeTextReport(w io.Writer, r *scanReport) {
	fmt.Fprintf(w, "state:    %s\n", r.State)
	writeMatch(w, "complete:", r.Complete)
	writeMatch(w, "partial: ", r.Partial)
	if r.Pattern != nil {
		writeMatch(w, "pattern: ", r.Pattern)
	}
	for _, seg := range r.Segments {
		fmt.Fprintf(w, "%-8s [%d:%d] %q\n", seg.Kind, seg.Start, seg.End, seg.Raw)
	}
}

func writeMatch(w io.Writer, label string, m *fence.Match) {
	if m == nil {
		fmt.Fprintf(w, "%s none\n", label)
		return
	}
	fmt.Fprintf(w, "%s [%d:%d] %q\n", label, m.StartIndex, m.EndIndex, m.OutputRaw)
}
