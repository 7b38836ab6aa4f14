// Package cli implements the interactive trainer: a line-oriented REPL on
// stdin/stdout that registers and logs in users, runs mock interviews one
// question at a time, prints past sessions and exports transcripts.
//
// Input helpers and output are reached through package-level seams
// (printlnFn, getSimpleText, getPassword, getMultiline) so tests can drive
// the App without a terminal.
package cli
