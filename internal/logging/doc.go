// Package logging provides structured logging for the kanban client.
//
// Entries are JSON lines produced by log/slog and written to a size-rotated
// file, because the board UI owns the terminal while it runs.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	api := logger.WithComponent("api")
//	api.Debug("request finished", "method", "GET", "path", "/tasks", "status", 200)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"request finished","component":"api","method":"GET","path":"/tasks","status":200}
//
// # Log Rotation
//
// When the file would exceed RotationConfig.MaxSizeMB it is renamed to
// debug.log.1 (older backups shift to .2, .3, ...) and a fresh file is
// opened. At most MaxBackups old files are kept.
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
