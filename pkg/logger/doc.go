// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes pulled from context.Context.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "mediademo"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), mediaversion.LogExtractor()),
//	)
//	log.InfoContext(ctx, "request served", logger.Path(r.URL.Path))
//
// Every record logged with a context gets the attributes returned by the
// registered ContextExtractor functions, so handlers do not have to thread
// the request ID or the resolved media version through by hand.
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
