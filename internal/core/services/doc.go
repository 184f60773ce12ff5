// Package services implements the driving port interfaces.
// Services contain the client's orchestration logic and call
// driven ports (adapters) for everything that touches the outside world.
//
// Services hold no transport, dialog or storage code of their own.
// They record logs and metrics for the operations they drive.
package services
