// Package logger provides a small factory around log/slog with functional
// options, plus attribute constructors for the names used across this
// library.
//
// New builds a *slog.Logger from a set of Option values:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(slog.String("component", "executor")),
//	)
//
// NewFromEnv reads LOG_LEVEL and LOG_FORMAT from the environment (via the
// config package) so drive loops embedded in larger programs pick up the
// host application's logging conventions without extra wiring.
//
// Helper constructors such as Error, Slot and Cycle keep attribute naming
// consistent wherever the library logs poll activity.
package logger
