// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions. The options select the output format (text or json), set the
// minimum level, attach static attributes and register ContextExtractor
// callbacks that add attributes pulled from the context on every record.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it in LogHandlerDecorator, which runs the
// registered extractors before delegating to the underlying handler.
//
// Helper constructors such as Entity, Kind, RunID and Errors live in attr.go
// and keep attribute naming consistent across the invoice factory and the
// CLI.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithCLI("invoicekit"),
//	    logger.WithSettings(cfg.LogLevel, cfg.LogFormat),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	ctx := context.WithValue(context.Background(), runIDKey{}, uuid.NewString())
//	log.WarnContext(ctx, "invoice rejected",
//	    logger.Entity("Invoice"),
//	    logger.Errors(errs...),
//	)
//
// # Configuration
//
//   - WithCLI: text output on stderr tagged with the application name.
//   - WithSettings: level and format from configuration strings, see
//     ParseLevel and ParseFormat.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: override the format.
//   - WithLevel: set a custom slog.Level.
//   - WithAttr: attach static attributes.
//   - WithContextExtractors / WithContextValue: inject attributes from context.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
