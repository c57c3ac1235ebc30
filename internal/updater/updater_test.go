package updater

import (
	"strings"
	"testing"
	"time"

	"jrt/internal/config"
)

func newTestUpdater(t *testing.T, cfg *config.Config) *Updater {
	t.Helper()
	u, err := NewUpdater(cfg, "v1.0.0")
	if err != nil {
		t.Fatalf("NewUpdater() error = %v", err)
	}
	return u
}

func TestShouldCheckForUpdate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.UpdateConfig
		want bool
	}{
		{
			"disabled",
			config.UpdateConfig{Enabled: false, AutoCheck: true},
			false,
		},
		{
			"auto-check off",
			config.UpdateConfig{Enabled: true, AutoCheck: false},
			false,
		},
		{
			"checked recently",
			config.UpdateConfig{Enabled: true, AutoCheck: true, LastCheck: time.Now()},
			false,
		},
		{
			"last check stale",
			config.UpdateConfig{Enabled: true, AutoCheck: true, LastCheck: time.Now().Add(-48 * time.Hour)},
			true,
		},
		{
			"never checked",
			config.UpdateConfig{Enabled: true, AutoCheck: true},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUpdater(t, &config.Config{UpdateConfig: tt.cfg})
			if got := u.ShouldCheckForUpdate(); got != tt.want {
				t.Errorf("ShouldCheckForUpdate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCleanVersion(t *testing.T) {
	if got := cleanVersion("v1.2.3"); got != "1.2.3" {
		t.Errorf("cleanVersion(%q) = %q, want %q", "v1.2.3", got, "1.2.3")
	}
	if got := cleanVersion("1.2.3"); got != "1.2.3" {
		t.Errorf("cleanVersion(%q) = %q, want %q", "1.2.3", got, "1.2.3")
	}
}

func TestTruncateChangelog(t *testing.T) {
	if got := truncateChangelog("", 400); got != "See release notes on GitHub for details." {
		t.Errorf("truncateChangelog(empty) = %q, want default message", got)
	}

	short := "Fixed a bug."
	if got := truncateChangelog(short, 400); got != short {
		t.Errorf("truncateChangelog(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("word ", 200)
	got := truncateChangelog(long, 100)
	if len(got) > 104 {
		t.Errorf("truncateChangelog(long) returned %d chars, want at most 104", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncateChangelog(long) = %q, want ellipsis suffix", got)
	}
}
