package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gubarz/streamfence/internal/fence"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	OpenChar     string        `mapstructure:"open_char"`
	CloseChar    string        `mapstructure:"close_char"`
	ChunkSize    int           `mapstructure:"chunk_size"`
	Delay        time.Duration `mapstructure:"delay"`
	Format       string        `mapstructure:"format"`
	Output       string        `mapstructure:"output"`
	LogLevel     string        `mapstructure:"log_level"`
	ColorText    string        `mapstructure:"color_text"`
	ColorCode    string        `mapstructure:"color_code"`
	ColorPending string        `mapstructure:"color_pending"`
	ColorBorder  string        `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("open_char", "`")
	viper.SetDefault("close_char", "`")
	viper.SetDefault("chunk_size", 4)       // Runes per simulated token
	viper.SetDefault("delay", "30ms")       // Pause between tokens
	viper.SetDefault("format", "text")      // text or yaml
	viper.SetDefault("output", "print")     // print or copy
	viper.SetDefault("log_level", "warn")   // debug, info, warn, error
	viper.SetDefault("color_text", "")      // Terminal default
	viper.SetDefault("color_code", "32")    // Green
	viper.SetDefault("color_pending", "33") // Yellow
	viper.SetDefault("color_border", "240") // Gray

	viper.SetConfigName("streamfence")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "streamfence"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("STREAMFENCE")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// FenceOptions builds validated fence options from open_char and close_char
func FenceOptions() (fence.Options, error) {
	open, err := fence.ParseChar(viper.GetString("open_char"))
	if err != nil {
		return fence.Options{}, fmt.Errorf("open_char: %w", err)
	}
	closeChar, err := fence.ParseChar(viper.GetString("close_char"))
	if err != nil {
		return fence.Options{}, fmt.Errorf("close_char: %w", err)
	}
	return fence.Options{StartEndChars: [2]fence.Char{open, closeChar}}, nil
}

// GetChunkSize returns how many runes make up one simulated token
func GetChunkSize() int {
	if n := viper.GetInt("chunk_size"); n > 0 {
		return n
	}
	return 1
}

// GetDelay returns the pause between simulated tokens
func GetDelay() time.Duration {
	return viper.GetDuration("delay")
}

// GetFormat returns the scan output format
func GetFormat() string {
	return viper.GetString("format")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetColorText returns the color for plain text
func GetColorText() string {
	return viper.GetString("color_text")
}

// GetColorCode returns the color for closed code blocks
func GetColorCode() string {
	return viper.GetString("color_code")
}

// GetColorPending returns the color for code blocks still streaming
func GetColorPending() string {
	return viper.GetString("color_pending")
}

// GetColorBorder returns the color for code block borders
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetLogLevel parses log_level, falling back to warn
func GetLogLevel() slog.Level {
	switch strings.ToLower(viper.GetString("log_level")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetFormat sets the scan output format at runtime
func SetFormat(format string) {
	viper.Set("format", format)
	C.Format = format
}
