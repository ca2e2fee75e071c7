// Package cli provides the interactive picshelf command-line client.
//
// It wires configuration, the local store, the session services, and an
// interactive REPL. Typical flow: resume or prompt for a session, start the
// background idle/expiry watcher, and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the local credential store
//   - Browse the image gallery: search, paginate, show details
//   - Forced logout on inactivity or session expiry, with a reason banner
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, services.Watcher, and runREPL for details.
package cli
