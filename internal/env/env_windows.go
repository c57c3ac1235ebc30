//go:build windows

package env

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"
)

var systemEnvRegPath = `System\CurrentControlSet\Control\Session Manager\Environment`

// JavaHome returns the active JAVA_HOME. The machine-wide value from the
// registry wins over the process environment, since the process copy can be
// stale in long-lived terminals.
func JavaHome() (string, error) {
	if value, err := registryJavaHome(); err == nil && value != "" {
		return value, nil
	}
	if value := os.Getenv("JAVA_HOME"); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("JAVA_HOME not set")
}

// registryJavaHome reads JAVA_HOME from the system environment key.
// Query access only; this tool never writes the registry.
func registryJavaHome() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, systemEnvRegPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("failed to open registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue("JAVA_HOME")
	if err != nil {
		return "", fmt.Errorf("JAVA_HOME not set: %w", err)
	}
	return value, nil
}
