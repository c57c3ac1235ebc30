//go:build !windows

package env

import "testing"

func TestJavaHome(t *testing.T) {
	t.Setenv("JAVA_HOME", "/usr/lib/jvm/jdk-17.0.2")

	got, err := JavaHome()
	if err != nil {
		t.Fatalf("JavaHome() error = %v", err)
	}
	if got != "/usr/lib/jvm/jdk-17.0.2" {
		t.Errorf("JavaHome() = %q, want %q", got, "/usr/lib/jvm/jdk-17.0.2")
	}
}

func TestJavaHomeUnset(t *testing.T) {
	t.Setenv("JAVA_HOME", "")

	if _, err := JavaHome(); err == nil {
		t.Error("JavaHome() error = nil with JAVA_HOME unset")
	}
}
