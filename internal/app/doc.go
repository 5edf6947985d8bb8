// Package app is the composition root for delayalert.
//
// Run loads configuration, builds the file logger, reads UI preferences,
// constructs the settings backend client and hands an Orchestrator to the
// Bubble Tea UI. The Orchestrator owns the two flows the UI triggers:
//
//   - Bootstrap: authenticate with the login code, fetch the reference
//     routes and the prior settings concurrently, then build form.State.
//     A missing code or a failed settings exchange is terminal (*BootError);
//     an unavailable route dataset only leaves the index empty.
//   - Save: submit a validated form.Payload to the backend.
package app
