package java

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// releaseFile is the optional metadata descriptor JDKs ship at the
// installation root, a list of KEY=VALUE (or KEY="VALUE") lines.
const releaseFile = "release"

// Classify decides whether dir is a Java installation root and, if so,
// extracts its metadata. The only hard requirement is a launcher at
// bin/java (bin\java.exe on Windows); version, vendor and architecture are
// best-effort and may stay empty. The returned path is canonical: symlinks
// resolved, relative segments removed.
//
// Classification never runs the launcher. A non-runtime directory is the
// common case during a scan, so failure is silent.
func (d *Detector) Classify(dir string) (Runtime, bool) {
	if !isExecutableFile(filepath.Join(dir, "bin", javaExecutableName())) {
		return Runtime{}, false
	}

	canonical := dir
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		canonical = resolved
	}
	if abs, err := filepath.Abs(canonical); err == nil {
		canonical = abs
	}

	rt := Runtime{Path: canonical}

	if meta := readReleaseFile(filepath.Join(canonical, releaseFile)); meta != nil {
		rt.Version = meta["JAVA_VERSION"]
		if rt.Version == "" {
			rt.Version = meta["JAVA_RUNTIME_VERSION"]
		}
		rt.Vendor = meta["IMPLEMENTOR"]
		rt.Arch = normalizeArch(meta["OS_ARCH"])
	}

	dirName := filepath.Base(canonical)
	if rt.Version == "" {
		rt.Version = versionFromDirName(dirName)
	}
	if rt.Arch == "" {
		rt.Arch = archFromDirName(dirName)
	}

	d.logger.Debug("classified java runtime", "path", rt.Path, "version", rt.Version)
	return rt, true
}

// IsInstallationRoot reports whether dir holds a java launcher under bin.
func (d *Detector) IsInstallationRoot(dir string) bool {
	return isExecutableFile(filepath.Join(dir, "bin", javaExecutableName()))
}

// javaExecutableName returns "java.exe" on Windows and "java" elsewhere.
func javaExecutableName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// isExecutableFile checks that path is a regular file and, outside Windows,
// carries an execute bit. Windows has no execute bit; existence is enough.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// readReleaseFile parses a JDK release descriptor. Values may be quoted.
// Malformed lines are skipped; a missing or unreadable file yields nil.
// Parsing is defensive on purpose: the descriptor is an external convention,
// not a format this tool controls.
func readReleaseFile(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	meta := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	if scanner.Err() != nil || len(meta) == 0 {
		return nil
	}
	return meta
}

// Directory naming conventions that embed a version, tried in order.
var dirVersionPatterns = []*regexp.Regexp{
	// jdk-17, jdk-17.0.2, jdk1.8.0_322, zulu17.30-ca-jdk17.0.3
	regexp.MustCompile(`jdk-?(\d+(?:\.\d+)*(?:_\d+)?)`),
	// java-17-openjdk, java-11, graalvm-ce-java17
	regexp.MustCompile(`java-?(\d+(?:\.\d+)*)`),
	// anything with a dotted version: temurin-21.0.1, corretto-17.0.8.7.1
	regexp.MustCompile(`(?:^|[^\d.])(\d+(?:\.\d+)+(?:_\d+)?)`),
}

// versionFromDirName extracts a version from names like "jdk-17.0.2" or
// "jdk1.8.0_322". Returns "" when no convention matches; a launcher alone is
// enough to count as a runtime.
func versionFromDirName(dirName string) string {
	dirName = strings.ToLower(dirName)
	for _, re := range dirVersionPatterns {
		if m := re.FindStringSubmatch(dirName); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// archFromDirName recognizes architecture tags embedded in directory names,
// e.g. "jdk-17.0.2-aarch64" or "zulu21.30.15-ca-jdk21-win_x64".
func archFromDirName(dirName string) string {
	dirName = strings.ToLower(dirName)
	for _, tag := range []string{"x86_64", "amd64", "x64", "aarch64", "arm64", "i386", "i586", "i686", "x86", "arm"} {
		if strings.Contains(dirName, tag) {
			return normalizeArch(tag)
		}
	}
	return ""
}

// normalizeArch folds vendor spellings of the same architecture into one tag.
func normalizeArch(arch string) string {
	switch strings.ToLower(arch) {
	case "":
		return ""
	case "x86_64", "amd64", "x64":
		return "x86_64"
	case "aarch64", "arm64":
		return "aarch64"
	case "x86", "i386", "i586", "i686":
		return "x86"
	case "arm", "arm32":
		return "arm"
	default:
		return strings.ToLower(arch)
	}
}
