// Package logger provides a small factory for configured slog loggers.
//
// It wraps the standard library's log/slog with sensible production
// defaults (JSON output, INFO level) and a handful of functional options
// for the cases a cache-heavy application actually needs: level, format,
// output destination, and static attributes.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "urlcache")),
//	)
//
//	log.Info("started")
//
// The attr helpers produce consistently keyed attributes:
//
//	log.Error("fetch failed", logger.Error(err), logger.Fingerprint(fp))
package logger
