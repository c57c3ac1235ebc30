//go:build !windows

// Package env resolves the active JAVA_HOME for the current process. It is
// strictly read-only: on Windows the machine-wide registry value is consulted,
// everywhere else the process environment is the source of truth.
package env

import (
	"fmt"
	"os"
)

// JavaHome returns the active JAVA_HOME from the process environment.
func JavaHome() (string, error) {
	if value := os.Getenv("JAVA_HOME"); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("JAVA_HOME not set")
}
