// Package app contains the application lifecycle: configuration, logger
// setup, loading the sweep file, and driving the formatter and sink. It is
// decoupled from any specific entrypoint like the CLI.
package app
