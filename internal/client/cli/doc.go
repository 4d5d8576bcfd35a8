// Package cli provides the interactive forestadmin command-line client.
//
// The REPL edits one workspace: a facility with its experiences and
// videos, plus a board notice. Every command that opens the shared dialog
// is followed by a prompt for one of its buttons, so confirmations and
// error reports are handled the same way for all editors.
//
// Start it with App.Run, which blocks until the user exits or input ends.
package cli
