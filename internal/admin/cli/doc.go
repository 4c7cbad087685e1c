// Package cli provides the interactive moderation console.
//
// It wires configuration, the persisted credential store, the authority
// client, and an interactive REPL gated on the session guard. Typical flow:
// verify the stored credential once at startup, prompt for login if needed,
// then moderate pending items (approve, reject with a reason, delete) and
// browse the sellers directory.
//
// The REPL is started via App.Run(ctx), which blocks until the operator
// exits. See App and runREPL for details.
package cli
