// Package cli is the command-line prover.
//
// Commands:
//   - register [username]  derive x from a password and publish (y1, y2)
//   - login [username]     run the proof and print the session id
//   - run                  register, then log in (also the default command)
//
// Passwords are read from the terminal without echo and wiped after use.
package cli
