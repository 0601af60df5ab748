// Package logger wraps a process-wide zap logger and carries request-scoped
// loggers through context.Context.
//
// Init once from main:
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
// Handlers and services pull the scoped logger from the request context:
//
//	log := logger.From(ctx).With(logger.Op("Users.Add"))
//	log.Info("user added", logger.UserID(u.ID))
//
// Without a context, L() returns the singleton.
package logger
