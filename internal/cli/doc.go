// Package cli wires the revu commands together.
//
// Commands set a package-level exit code instead of returning errors so
// that cobra usage errors and pipeline failures map to distinct process
// exit codes: 0 success, 1 usage/configuration error, 2 unreadable or
// empty diff, 3 pipeline failure.
package cli
