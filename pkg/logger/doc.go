// Package logger standardises structured logging around log/slog: a
// single factory configured by functional options, attribute helpers
// that keep key names consistent, and transparent injection of values
// carried in a context.Context.
//
// New builds a text or JSON slog.Handler, applies static attributes, and
// wraps the result in a ContextHandler that runs registered
// ContextExtractor callbacks on every log call. The helpers in attr.go
// (MessageID, Component, Handler, Error, ...) are how the dispatch loop
// and the barrier stores tag their records, so a message can be traced
// across publisher, dispatcher, and handler logs by one key.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("dispatch"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "message delivered",
//	    logger.MessageID(msg.ID),
//	    logger.Duration(elapsed),
//	)
//
// The WithDevelopment, WithStaging, and WithProduction presets pick the
// format and level conventionally used per environment; everything they
// set can still be overridden by later options.
//
// Error and Errors emit attributes only for non-nil errors, so
// `log.Info("done", logger.Error(err))` needs no nil check at the call
// site.
package logger
