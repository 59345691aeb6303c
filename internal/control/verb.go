// Package control invokes the external AdGuard Home control binary and
// inspects the daemon process when the binary cannot answer.
package control

import (
	"fmt"
	"strings"
)

// Verb is a control-binary command.
type Verb string

const (
	VerbStart  Verb = "start"
	VerbStop   Verb = "stop"
	VerbStatus Verb = "status"
)

// ParseVerb matches s case-insensitively against the known verbs.
func ParseVerb(s string) (Verb, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return VerbStart, nil
	case "stop":
		return VerbStop, nil
	case "status":
		return VerbStatus, nil
	}
	return "", fmt.Errorf("unknown verb %q (want start, stop or status)", s)
}
