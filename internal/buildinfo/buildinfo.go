// Package buildinfo tags each process run with a session id so crash
// reports and logs from a shared testing rig can be told apart.
package buildinfo

import "github.com/google/uuid"

// SessionID is generated once per process and attached to every
// diagnostic logged through main's logrus entry, including its fatal
// ones; config.Load logs through the standard library logger and does
// not carry it.
var SessionID = uuid.New().String()
