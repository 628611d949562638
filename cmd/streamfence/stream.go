package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gubarz/streamfence/internal/config"
	"github.com/gubarz/streamfence/internal/render"
	"github.com/gubarz/streamfence/internal/stream"
	"github.com/gubarz/streamfence/internal/ui"
	"github.com/spf13/cobra"
)

var streamCmd = &cobra.Command{
	Use:   "stream [file]",
	Short: "Replay a file token by token and log fence transitions",
	Long: `Feeds the input to the matchers one simulated token at a time, the way a
chat renderer receives model output, and prints every point where the view
would switch between text and code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStream,
}

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Interactively replay a file with live code view",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	streamCmd.Flags().Bool("no-render", false, "Skip the final rendering of all segments")
}

func runStream(cmd *cobra.Command, args []string) error {
	opts, err := config.FenceOptions()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	replayer, err := stream.NewReplayer(text, config.GetChunkSize(), config.GetDelay(), opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	styles := render.DefaultStyles()
	styles.LoadFromConfig()
	out := cmd.OutOrStdout()

	var last stream.Update
	err = replayer.Run(ctx, func(u stream.Update) error {
		last = u
		writeTransitions(out, styles, u)
		return nil
	})
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	if noRender, _ := cmd.Flags().GetBool("no-render"); !noRender {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.New(styles, 0).Render(last.Segments))
	}
	return nil
}

// writeTransitions prints the view changes an update causes
func writeTransitions(w io.Writer, styles *render.StyleManager, u stream.Update) {
	prefix := styles.Dim.Render(fmt.Sprintf("[%4d @%5d]", u.Seq, len(u.Buffer)))
	if u.Reopened > 0 {
		fmt.Fprintf(w, "%s %s\n", prefix, styles.Dim.Render(
			fmt.Sprintf("block reopened: closing fence no longer valid (%d)", u.Reopened)))
	}
	for _, seg := range u.Closed {
		lines := strings.Count(seg.Body(), "\n") + 1
		fmt.Fprintf(w, "%s %s\n", prefix, styles.Label.Render(
			fmt.Sprintf("block closed: %s, %d lines, [%d:%d]", render.Label(seg), lines, seg.Start, seg.End)))
	}
	switch {
	case u.Opened():
		if seg, ok := u.Pending(); ok {
			fmt.Fprintf(w, "%s %s\n", prefix, styles.PendingLabel.Render(
				fmt.Sprintf("code view on at %d (%s)", seg.Start, u.State)))
		}
	case u.Prev.Open() && !u.State.Open() && len(u.Closed) == 0:
		fmt.Fprintf(w, "%s %s\n", prefix, styles.Dim.Render("pending fence dropped"))
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := config.FenceOptions()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	return ui.RunWatch(text, opts, config.GetChunkSize(), config.GetDelay())
}
