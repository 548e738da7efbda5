// Package commands defines the moysekret CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init             Create a profile with fresh encryption and signing keys
//   - encrypt          Encrypt a file into the profile's storage directory
//   - decrypt          Decrypt a .cz file into a destination directory
//   - sign             Write a detached signature for a file
//   - verify           Check a detached signature
//   - fingerprint      Print the profile's public key fingerprint
//   - password hash    Print an Argon2id hash of a password
//   - password verify  Check a password against an Argon2id hash
//
// # Implementation
//
// The root command builds a dependency graph (stores, services) before any
// subcommand runs, so handlers share a single app context. Secret prompts
// go through the terminal with echo disabled; destructive overrides require
// interactive confirmation.
package commands
