package java

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetectInPathsDepthBound(t *testing.T) {
	// Installation sits exactly 3 levels below the root.
	root := t.TempDir()
	level2 := filepath.Join(root, "level1", "level2")
	if err := os.MkdirAll(level2, 0o755); err != nil {
		t.Fatal(err)
	}
	install := makeInstall(t, level2, "jdk-17.0.2")

	d := newTestDetector()

	if got := d.DetectInPaths([]string{root}, 2); len(got) != 0 {
		t.Errorf("maxDepth 2: got %d runtimes, want 0 (installation is at depth 3)", len(got))
	}

	got := d.DetectInPaths([]string{root}, 3)
	if len(got) != 1 {
		t.Fatalf("maxDepth 3: got %d runtimes, want 1", len(got))
	}
	want, _ := filepath.EvalSymlinks(install)
	if got[0].Path != want {
		t.Errorf("Path = %q, want %q", got[0].Path, want)
	}
	if got[0].Version != "17.0.2" {
		t.Errorf("Version = %q, want %q", got[0].Version, "17.0.2")
	}
}

func TestDetectInPathsRootIsInstallation(t *testing.T) {
	dir := t.TempDir()
	install := makeInstall(t, dir, "jdk-21")

	d := newTestDetector()
	got := d.DetectInPaths([]string{install}, 0)
	if len(got) != 1 {
		t.Fatalf("got %d runtimes, want 1 (root itself is an installation, depth 0)", len(got))
	}
}

func TestDetectInPathsNoNestedDoubleCount(t *testing.T) {
	// Old JDK layouts nest a full JRE (with its own bin/java) inside the
	// installation. The walker must not descend into a confirmed
	// installation, so the inner launcher is never reported.
	dir := t.TempDir()
	install := makeInstall(t, dir, "jdk1.8.0_322")
	makeInstall(t, install, "jre")

	d := newTestDetector()
	got := d.DetectInPaths([]string{dir}, 10)
	if len(got) != 1 {
		t.Fatalf("got %d runtimes, want exactly 1", len(got))
	}
	want, _ := filepath.EvalSymlinks(install)
	if got[0].Path != want {
		t.Errorf("Path = %q, want outer installation %q", got[0].Path, want)
	}
}

func TestDetectInPathsSymlinkLoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Link back to an ancestor: traversal must still terminate.
	if err := os.Symlink(root, filepath.Join(sub, "loop")); err != nil {
		t.Fatal(err)
	}
	makeInstall(t, root, "jdk-11")

	d := newTestDetector()
	got := d.DetectInPaths([]string{root}, 10)
	if len(got) != 1 {
		t.Errorf("got %d runtimes, want 1 (loop must not duplicate or hang)", len(got))
	}
}

func TestDetectInPathsSymlinkedInstallationCountedOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	root := t.TempDir()
	install := makeInstall(t, root, "jdk-17")
	if err := os.Symlink(install, filepath.Join(root, "default-jdk")); err != nil {
		t.Fatal(err)
	}

	d := newTestDetector()
	got := d.DetectInPaths([]string{root}, 2)
	if len(got) != 1 {
		t.Errorf("got %d runtimes, want 1 (link and target are the same installation)", len(got))
	}
}

func TestDetectInPathsUnreadableSubtreeSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix permission bits")
	}
	if os.Geteuid() == 0 {
		t.Skip("permission bits ignored as root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	if err := os.MkdirAll(filepath.Join(locked, "inner"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })
	install := makeInstall(t, root, "jdk-17.0.2")

	d := newTestDetector()
	got := d.DetectInPaths([]string{root}, 3)
	if len(got) != 1 {
		t.Fatalf("got %d runtimes, want 1 (unreadable sibling must not stop the walk)", len(got))
	}
	want, _ := filepath.EvalSymlinks(install)
	if got[0].Path != want {
		t.Errorf("Path = %q, want %q", got[0].Path, want)
	}
}

func TestDetectInPathsMissingRoots(t *testing.T) {
	d := newTestDetector()

	roots := []string{
		filepath.Join(t.TempDir(), "does-not-exist"),
		filepath.Join(t.TempDir(), "also-missing"),
	}
	if got := d.DetectInPaths(roots, 3); len(got) != 0 {
		t.Errorf("got %d runtimes from missing roots, want 0", len(got))
	}
}

func TestDetectInPathsFileRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := newTestDetector()
	if got := d.DetectInPaths([]string{file}, 2); len(got) != 0 {
		t.Errorf("got %d runtimes from a file root, want 0", len(got))
	}
}

func TestDetectInPathsMultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	makeInstall(t, rootA, "jdk-17.0.2")
	makeInstall(t, rootB, "jdk-11.0.19")
	makeInstall(t, rootB, "jdk-21")

	d := newTestDetector()
	got := d.DetectInPaths([]string{rootA, rootB}, 2)
	if len(got) != 3 {
		t.Errorf("got %d runtimes across roots, want 3", len(got))
	}
}

func TestGatherInPathsAccumulates(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	makeInstall(t, rootA, "jdk-17")
	makeInstall(t, rootB, "jdk-21")

	d := newTestDetector()
	reg := NewRegistry()

	if added := d.GatherInPaths(reg, []string{rootA}, 2); added != 1 {
		t.Errorf("first gather added %d, want 1", added)
	}
	if added := d.GatherInPaths(reg, []string{rootB}, 2); added != 1 {
		t.Errorf("second gather added %d, want 1", added)
	}
	// Same root again: nothing new.
	if added := d.GatherInPaths(reg, []string{rootA}, 2); added != 0 {
		t.Errorf("repeat gather added %d, want 0", added)
	}
	if reg.Len() != 2 {
		t.Errorf("registry holds %d runtimes, want 2", reg.Len())
	}
}

func TestGatherInPathsNegativeDepthPanics(t *testing.T) {
	d := newTestDetector()
	defer func() {
		if recover() == nil {
			t.Error("GatherInPaths() with negative depth did not panic")
		}
	}()
	d.GatherInPaths(NewRegistry(), []string{t.TempDir()}, -1)
}

func TestDetectInPathsIdempotent(t *testing.T) {
	root := t.TempDir()
	makeInstall(t, root, "jdk-17.0.2",
		`JAVA_VERSION="17.0.2"`,
		`IMPLEMENTOR="Eclipse Adoptium"`,
	)
	makeInstall(t, root, "jdk-11")

	d := newTestDetector()
	first := d.DetectInPaths([]string{root}, 2)
	second := d.DetectInPaths([]string{root}, 2)

	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	seen := make(map[string]Runtime, len(first))
	for _, rt := range first {
		seen[rt.Path] = rt
	}
	for _, rt := range second {
		if other, ok := seen[rt.Path]; !ok || other != rt {
			t.Errorf("second run differs for %s: %+v vs %+v", rt.Path, other, rt)
		}
	}
}
