// Package cli provides the line-oriented salesdesk client.
//
// It wires the controller and an interactive REPL on top of the same
// view-state the TUI uses. Typical flow: log in, select a sales file, upload
// it, look at the preview and mapping errors, then ask questions about the
// data.
//
// Key features:
//   - Login / Signup / Logout
//   - Select (typed or dropped path) and upload of a sales file
//   - Preview of the cleaned data and the mapping errors
//   - Natural-language questions answered with SQL
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
