package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/teller/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// logOutput resolves LOG_OUTPUT. Anything other than stderr/stdout is a file
// path opened for appending; the returned closer releases it.
func logOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output %q: %w", output, err)
	}
	return f, f, nil
}

func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyles := map[log.Level]struct {
		icon  string
		color lipgloss.AdaptiveColor
	}{
		log.ErrorLevel: {"❌", errorTxtColor},
		log.InfoLevel:  {"ℹ️", infoTxtColor},
		log.WarnLevel:  {"⚠️", warnTxtColor},
		log.DebugLevel: {"🐛", debugTxtColor},
	}
	for level, s := range levelStyles {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(s.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
	}

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":      errorTxtColor,
		"warn":       warnTxtColor,
		"session_id": infoTxtColor,
		"operation":  infoTxtColor,
		"context":    debugTxtColor,
		"prefix":     debugTxtColor,
	}
	for key, c := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(c)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
