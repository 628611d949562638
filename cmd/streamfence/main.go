package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gubarz/streamfence/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "streamfence",
	Short: "Spot fenced code blocks in streaming text",
	Long: `Recognises fenced code blocks inside text that arrives token by token.

A block is reported as pending as soon as its opening fence starts, and as
complete once its closing fence line appears.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(scanCmd, extractCmd, streamCmd, watchCmd)

	rootCmd.PersistentFlags().String("open-char", "`", "Opening fence character (` or ~)")
	rootCmd.PersistentFlags().String("close-char", "`", "Closing fence character (` or ~)")
	rootCmd.PersistentFlags().IntP("chunk", "c", 4, "Runes per simulated token")
	rootCmd.PersistentFlags().DurationP("delay", "d", 0, "Pause between simulated tokens (default from config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	viper.BindPFlag("open_char", rootCmd.PersistentFlags().Lookup("open-char"))
	viper.BindPFlag("close_char", rootCmd.PersistentFlags().Lookup("close-char"))
	viper.BindPFlag("chunk_size", rootCmd.PersistentFlags().Lookup("chunk"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	if lvl, _ := rootCmd.PersistentFlags().GetString("log-level"); lvl != "" {
		viper.Set("log_level", lvl)
	}
	if d, _ := rootCmd.PersistentFlags().GetDuration("delay"); d > 0 {
		viper.Set("delay", d)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.GetLogLevel(),
	})))
}

// readInput reads the named file, or stdin when no file or "-" is given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	slog.Debug("read input", "path", args[0], "bytes", len(data))
	return string(data), nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
