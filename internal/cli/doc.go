// Package cli provides the interactive terminal front end for the
// university records service.
//
// It wires the server application (auth and recheck services) into a REPL
// that prompts for input, dispatches commands, and prints friendly messages
// for the domain's sentinel errors. Typical flow: start the background
// initializer, then execute user commands until "exit".
//
// Key features:
//   - Register / Login / Logout for ADMIN, TEACHER, and STUDENT accounts
//   - Password recovery requests
//   - Username availability checks
//   - Submitting, listing, and deciding recheck requests
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
