// Package logger provides structured logging with configurable level and
// format on top of log/slog. Logs are kept off standard output, which carries
// scenario plans and summaries.
package logger
