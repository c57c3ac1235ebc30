package java

import "testing"

func TestRuntimeString(t *testing.T) {
	tests := []struct {
		name string
		rt   Runtime
		want string
	}{
		{
			"full metadata",
			Runtime{Path: "/usr/lib/jvm/jdk-17.0.2", Version: "17.0.2", Vendor: "Eclipse Adoptium", Arch: "x86_64"},
			"17.0.2 (Eclipse Adoptium, x86_64) at /usr/lib/jvm/jdk-17.0.2",
		},
		{
			"version only",
			Runtime{Path: "/opt/java/jdk-21", Version: "21"},
			"21 at /opt/java/jdk-21",
		},
		{
			"unknown version",
			Runtime{Path: "/opt/java/mystery", Arch: "aarch64"},
			"unknown (aarch64) at /opt/java/mystery",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeSemVer(t *testing.T) {
	tests := []struct {
		version string
		want    string // expected semver rendering, "" for nil
	}{
		{"17.0.2", "17.0.2"},
		{"17.0.2+8", "17.0.2"},
		{"21", "21.0.0"},
		{"1.8.0_322", "8.0.0"}, // legacy scheme: 1.8 is Java 8
		{"11.0.19", "11.0.19"},
		{"", ""},
		{"not-a-version", ""},
	}
	for _, tt := range tests {
		rt := Runtime{Version: tt.version}
		sv := rt.SemVer()
		switch {
		case tt.want == "" && sv != nil:
			t.Errorf("SemVer() for %q = %v, want nil", tt.version, sv)
		case tt.want != "" && sv == nil:
			t.Errorf("SemVer() for %q = nil, want %s", tt.version, tt.want)
		case sv != nil && sv.String() != tt.want:
			t.Errorf("SemVer() for %q = %s, want %s", tt.version, sv, tt.want)
		}
	}
}

func TestRuntimeMajor(t *testing.T) {
	tests := []struct {
		version string
		want    int
	}{
		{"17.0.2", 17},
		{"1.8.0_322", 8},
		{"21", 21},
		{"", 0},
	}
	for _, tt := range tests {
		if got := (Runtime{Version: tt.version}).Major(); got != tt.want {
			t.Errorf("Major() for %q = %d, want %d", tt.version, got, tt.want)
		}
	}
}

func TestRuntimeEqual(t *testing.T) {
	a := Runtime{Path: "/opt/java/jdk-17", Version: "17"}
	b := Runtime{Path: "/opt/java/jdk-17", Version: "17.0.2", Vendor: "Oracle"}
	c := Runtime{Path: "/opt/java/jdk-21", Version: "17"}

	if !a.Equal(b) {
		t.Error("runtimes with the same path compare unequal")
	}
	if a.Equal(c) {
		t.Error("runtimes with different paths compare equal")
	}
}

func TestSortRuntimes(t *testing.T) {
	runtimes := []Runtime{
		{Path: "/opt/java/mystery"},
		{Path: "/opt/java/jdk1.8.0_322", Version: "1.8.0_322"},
		{Path: "/opt/java/jdk-21", Version: "21"},
		{Path: "/opt/java/jdk-17.0.2", Version: "17.0.2"},
		{Path: "/opt/java/jdk-17-alt", Version: "17.0.2"},
	}
	SortRuntimes(runtimes)

	wantPaths := []string{
		"/opt/java/jdk-21",
		"/opt/java/jdk-17-alt", // path breaks the 17.0.2 tie
		"/opt/java/jdk-17.0.2",
		"/opt/java/jdk1.8.0_322",
		"/opt/java/mystery", // unparseable versions sort last
	}
	for i, want := range wantPaths {
		if runtimes[i].Path != want {
			t.Errorf("runtimes[%d].Path = %q, want %q", i, runtimes[i].Path, want)
		}
	}
}
