package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/logging"
)

// logsOptions holds the flags of the logs command.
type logsOptions struct {
	tail   int
	follow bool
	level  string
	since  string
	grep   string
}

func newLogsCmd() *cobra.Command {
	opts := &logsOptions{}
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "View the debug log",
		Long: `View and filter the debug log written by the board and the task commands.

The log lives in $XDG_STATE_HOME/kanban/debug.log (~/.local/state/kanban by
default). Every request to the task service is logged with its method, path,
status and request id.

Examples:
  # Show the last 50 entries
  kanban logs

  # Show every entry
  kanban logs -n 0

  # Follow the log while the board runs in another terminal
  kanban logs -f

  # Filter by log level
  kanban logs --level warn

  # Show entries from the last hour
  kanban logs --since 1h

  # Search for specific patterns
  kanban logs --grep "PUT|DELETE"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd, opts)
		},
	}

	logsCmd.Flags().IntVarP(&opts.tail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&opts.level, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&opts.since, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&opts.grep, "grep", "", "Filter logs matching pattern (regex)")
	return logsCmd
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Extra     map[string]any `json:"-"`
}

// UnmarshalJSON keeps the fields without a struct field in Extra.
func (e *logEntry) UnmarshalJSON(data []byte) error {
	type alias logEntry
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range []string{"time", "level", "msg", "component", "request_id"} {
		delete(all, known)
	}
	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	levelStyles = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(timeStyle.Render("[" + entry.Time.Format("15:04:05.000") + "]"))

	level := strings.ToUpper(entry.Level)
	sb.WriteString(" ")
	if style, ok := levelStyles[level]; ok {
		sb.WriteString(style.Render("[" + level + "]"))
	} else {
		sb.WriteString("[" + level + "]")
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	writeField := func(key string, value any) {
		sb.WriteString(" ")
		sb.WriteString(fieldStyle.Render(key + "="))
		fmt.Fprintf(&sb, "%v", value)
	}
	if entry.Component != "" {
		writeField("component", entry.Component)
	}
	if entry.RequestID != "" {
		writeField("request_id", entry.RequestID)
	}
	for _, key := range slices.Sorted(maps.Keys(entry.Extra)) {
		writeField(key, entry.Extra[key])
	}

	return sb.String()
}

// logFilter selects the entries to print.
type logFilter struct {
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

func newLogFilter(opts *logsOptions, now time.Time) (logFilter, error) {
	f := logFilter{minLevel: -1}
	if opts.level != "" {
		level, err := logging.ParseLevel(opts.level)
		if err != nil {
			return f, err
		}
		f.minLevel = levelPriority(level)
	}
	if opts.since != "" {
		d, err := time.ParseDuration(opts.since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = now.Add(-d)
	}
	if opts.grep != "" {
		re, err := regexp.Compile(opts.grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.grep = re
	}
	return f, nil
}

// passes checks if a log entry passes all filter criteria
func (f logFilter) passes(entry *logEntry) bool {
	if f.minLevel >= 0 && levelPriority(entry.Level) < f.minLevel {
		return false
	}
	if !f.since.IsZero() && entry.Time.Before(f.since) {
		return false
	}

	// Grep searches the message and every field value
	if f.grep != nil {
		parts := []string{entry.Msg, entry.Component, entry.RequestID}
		for _, v := range entry.Extra {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
		if !f.grep.MatchString(strings.Join(parts, " ")) {
			return false
		}
	}
	return true
}

// render returns the printable form of line, or false when it is filtered
// out. Lines that are not JSON are printed as they are.
func (f logFilter) render(line string) (string, bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !f.passes(&entry) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

func logPath() string {
	return filepath.Join(config.StateDir(), logging.LogFileName)
}

func runLogs(cmd *cobra.Command, opts *logsOptions) error {
	filter, err := newLogFilter(opts, time.Now())
	if err != nil {
		return err
	}

	path := logPath()
	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", path)
		return nil
	}

	if opts.follow {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")
		return followLogs(ctx, out, path, filter, 100*time.Millisecond)
	}
	return displayLogs(out, path, opts.tail, filter)
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(out io.Writer, path string, tail int, filter logFilter) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	// Increase buffer size for potentially long log lines
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if rendered, ok := filter.render(line); ok {
			entries = append(entries, rendered)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}
	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}
	return nil
}

// followLogs prints entries appended to the log file until ctx is done. When
// the file is rotated away or truncated, following continues from the start
// of the new file.
func followLogs(ctx context.Context, out io.Writer, path string, filter logFilter, poll time.Duration) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { file.Close() }()

	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		offset += int64(len(chunk))
		partial += chunk
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("error reading log file: %w", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(poll):
			}
			if logReplaced(path, file, offset) {
				next, err := os.Open(path)
				if err != nil {
					continue
				}
				file.Close()
				file = next
				reader.Reset(file)
				offset = 0
				partial = ""
			}
			continue
		}

		line := strings.TrimSpace(partial)
		partial = ""
		if line == "" {
			continue
		}
		if rendered, ok := filter.render(line); ok {
			fmt.Fprintln(out, rendered)
		}
	}
}

// logReplaced reports whether path no longer names the open file, or names
// it truncated below what was already read. A missing path is not replaced
// yet.
func logReplaced(path string, open *os.File, offset int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	current, err := open.Stat()
	if err != nil {
		return true
	}
	return !os.SameFile(info, current) || info.Size() < offset
}
