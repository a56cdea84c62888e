// Package cli implements the interactive Serena diary client: a small REPL
// over the local store with commands for account handling, mood logging,
// the companion chat and preferences. Command handlers own their prompts and
// error messages; the loop itself only dispatches.
package cli
