// Package sink consumes the lazy instance stream produced by a sweep
// specification. StreamSink writes one formatted command per line to a
// writer; ScriptSink writes one script file per command, optionally guarded
// by a run token so repeated batch execution is idempotent.
package sink
