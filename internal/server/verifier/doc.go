// Package verifier implements the verifier side of the Chaum-Pedersen
// authentication protocol as a per-user state machine:
//
//	Unregistered → Registered → Challenged → Verified
//	Challenged → Challenged  (a new challenge replaces the old one)
//	Challenged → Rejected    (failed proof; the user may be challenged again)
//
// Service composes the proof engine from internal/zkp with an injected
// store.Store and a session token issuer. All randomness (challenges and
// auth ids) comes from the io.Reader given in Options.
package verifier
