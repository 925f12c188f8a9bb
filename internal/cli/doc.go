// Package cli provides the interactive HireLink portal client.
//
// It wires configuration, the local settings database, the REST API client,
// the shared state stores and an interactive REPL. Typical flow: resume or
// establish a session through the route guard, sync the surface's
// notifications, and execute user commands.
//
// Key features:
//   - Candidate and organization login, registration, logout
//   - Per-surface view selection (the candidate selection persists)
//   - Notification listing and read tracking; admin broadcasts
//   - Job posting management for admin and HR roles
//   - Resume uploads to the asset host
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
