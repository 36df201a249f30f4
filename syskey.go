// Package syskey keeps a workstation awake during a configured time window by
// tapping a key at randomized intervals. The command lives in cmd/syskey.
package syskey

// Version is set at link time with -ldflags "-X pkg.jsn.cam/syskey.Version=...".
var Version = "devel"
