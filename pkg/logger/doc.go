// Package logger builds configured log/slog loggers: JSON or text output,
// level control, static attributes, with production-safe defaults (JSON at
// info level on stdout).
//
//	log := logger.New(
//	    logger.WithDevelopment("webapp"),
//	)
//	log.Debug("cache warmed", slog.Int("entries", n))
//
// Configuration can come from the environment via logger.Config and the
// config package:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil { … }
//	log := logger.New(logger.WithConfig(cfg))
//
// The coordination utilities in this module are deliberately silent; logging
// belongs at the composition root and in consumers such as the loader
// registry, which accepts a *slog.Logger built here.
package logger
