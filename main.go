package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"jrt/internal/config"
	"jrt/internal/env"
	"jrt/internal/java"
	"jrt/internal/theme"
	"jrt/internal/updater"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Version is set during build time via ldflags
var Version = "dev"

// Use jrt custom theme
var (
	successStyle = theme.SuccessStyle
	errorStyle   = theme.ErrorStyle
	warningStyle = theme.WarningStyle
	infoStyle    = theme.InfoStyle
	titleStyle   = theme.Title
	currentStyle = theme.CurrentStyle
)

func main() {
	args, verbose := verboseRequested(os.Args[1:])
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetDefault(newLogger(os.Stderr, level))

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "list":
		handleList()
	case "scan":
		handleScan(args)
	case "env":
		handleEnv()
	case "current":
		handleCurrent()
	case "add":
		handleAdd(args)
	case "remove":
		handleRemove(args)
	case "add-path":
		handleAddPath(args)
	case "remove-path":
		handleRemovePath(args)
	case "list-paths":
		handleListPaths()
	case "doctor":
		handleDoctor()
	case "update":
		handleUpdate()
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	// Rate-limited update check (silent unless a new release exists)
	checkForUpdateBackground()
}

func handleList() {
	detector := java.NewDetector()

	var runtimes []java.Runtime
	var scanErr error

	java.WithScanner("Scanning for Java runtimes...", func() error {
		runtimes, scanErr = detector.FindAll()
		return nil
	})

	if scanErr != nil {
		fmt.Println(errorStyle.Render("Error finding Java runtimes: " + scanErr.Error()))
		os.Exit(1)
	}

	if len(runtimes) == 0 {
		fmt.Println(warningStyle.Render("No Java installations found."))
		fmt.Println(infoStyle.Render("Run 'jrt add-path <dir>' to add a directory to scan."))
		return
	}

	current, _ := env.JavaHome()

	fmt.Println(titleStyle.Render("Detected Java Runtimes"))
	fmt.Println(renderRuntimeTable(runtimes, current))

	if current == "" {
		fmt.Println(theme.Faint.Render("JAVA_HOME is not set; no runtime is marked as current."))
	}
}

func handleScan(args []string) {
	depth := 2
	roots := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--depth", "-d":
			if i+1 >= len(args) {
				fmt.Println(errorStyle.Render("Missing value for --depth"))
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				fmt.Println(errorStyle.Render("Invalid depth: " + args[i]))
				os.Exit(1)
			}
			depth = n
		default:
			roots = append(roots, args[i])
		}
	}

	if len(roots) == 0 {
		fmt.Println(errorStyle.Render("Usage: jrt scan [--depth N] <directory> [directory...]"))
		fmt.Println(infoStyle.Render("Example: jrt scan --depth 3 /opt /usr/lib/jvm"))
		os.Exit(1)
	}

	detector := java.NewDetector()

	var runtimes []java.Runtime
	java.WithScanner(fmt.Sprintf("Scanning %d path(s) for Java runtimes...", len(roots)), func() error {
		runtimes = detector.DetectInPaths(roots, depth)
		return nil
	})

	if len(runtimes) == 0 {
		fmt.Println(warningStyle.Render("No Java installations found in the given paths."))
		fmt.Println(theme.Faint.Render(fmt.Sprintf("Searched %d path(s) down to depth %d.", len(roots), depth)))
		return
	}

	java.SortRuntimes(runtimes)
	current, _ := env.JavaHome()

	fmt.Println(titleStyle.Render("Scan Results"))
	fmt.Println(renderRuntimeTable(runtimes, current))
}

func handleEnv() {
	detector := java.NewDetector()
	runtimes := detector.DetectInEnvironments()

	if len(runtimes) == 0 {
		fmt.Println(warningStyle.Render("No Java runtimes referenced by the environment."))
		fmt.Println(theme.Faint.Render("Checked JAVA_HOME, JAVA_ROOT, JDK_HOME, JRE_HOME and PATH."))
		return
	}

	java.SortRuntimes(runtimes)
	current, _ := env.JavaHome()

	fmt.Println(titleStyle.Render("Environment Java Runtimes"))
	fmt.Println(renderRuntimeTable(runtimes, current))
}

func handleCurrent() {
	javaHome, err := env.JavaHome()
	if err != nil {
		fmt.Println(warningStyle.Render("JAVA_HOME is not set."))
		fmt.Println(theme.Faint.Render("Run ") + theme.Code.Render("jrt list") + theme.Faint.Render(" to see detected runtimes."))
		return
	}

	detector := java.NewDetector()
	rt, ok := detector.Classify(javaHome)
	if !ok {
		fmt.Println(theme.ErrorMessage("JAVA_HOME is set but does not point at a Java installation:"))
		fmt.Println("  " + theme.PathStyle.Render(javaHome))
		os.Exit(1)
	}

	version := rt.Version
	if version == "" {
		version = "unknown"
	}

	fmt.Println(titleStyle.Render("Current Java Runtime"))
	fmt.Println()
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Version:"), currentStyle.Render(version))
	if rt.Vendor != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Vendor: "), rt.Vendor)
	}
	if rt.Arch != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Arch:   "), rt.Arch)
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Path:   "), theme.PathStyle.Render(rt.Path))
}

func handleAdd(args []string) {
	if len(args) < 1 {
		fmt.Println(errorStyle.Render("Usage: jrt add <path>"))
		fmt.Println(infoStyle.Render("Example: jrt add /opt/custom/jdk-21"))
		fmt.Println()
		fmt.Println(theme.Faint.Render("This pins a specific Java installation so it always appears in 'jrt list'."))
		os.Exit(1)
	}

	path := args[0]

	detector := java.NewDetector()
	rt, ok := detector.Classify(path)
	if !ok {
		fmt.Println(theme.ErrorMessage("Not a Java installation:"))
		fmt.Println("  " + theme.PathStyle.Render(path))
		fmt.Println(theme.Faint.Render("The directory must contain a java launcher under bin/."))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	if cfg.HasCustomPath(rt.Path) {
		fmt.Println(warningStyle.Render("This installation is already pinned."))
		return
	}

	cfg.AddCustomPath(rt.Path)
	if err := cfg.Save(); err != nil {
		fmt.Println(errorStyle.Render("Error saving config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(theme.SuccessMessage("Pinned Java installation:"))
	fmt.Println("  " + rt.String())
}

func handleRemove(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	var pathToRemove string

	// Interactive mode if no path specified
	if len(args) < 1 {
		if len(cfg.CustomPaths) == 0 {
			fmt.Println(theme.InfoMessage("No pinned installations to remove"))
			fmt.Println("  " + theme.Faint.Render("Use ") + theme.Code.Render("jrt add <path>") + theme.Faint.Render(" to pin one"))
			return
		}

		detector := java.NewDetector()
		options := make([]huh.Option[string], len(cfg.CustomPaths))
		for i, p := range cfg.CustomPaths {
			status := theme.Faint.Render("Not found")
			if detector.IsInstallationRoot(p) {
				status = theme.SuccessStyle.Render("✓ Valid")
			}
			options[i] = huh.NewOption(fmt.Sprintf("%s  %s", currentStyle.Render(p), status), p)
		}

		err := huh.NewSelect[string]().
			Title(theme.Subtitle.Render("Select Pinned Installation to Remove")).
			Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
			Options(options...).
			Value(&pathToRemove).
			Run()

		if err != nil {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
			os.Exit(1)
		}
	} else {
		pathToRemove = args[0]
	}

	if !cfg.HasCustomPath(pathToRemove) {
		fmt.Println(warningStyle.Render("This path is not pinned."))
		return
	}

	confirmed, err := confirmAction(
		"Remove pinned installation?",
		fmt.Sprintf("Path: %s\n\nThe installation itself is not touched.", pathToRemove),
	)
	if err != nil || !confirmed {
		fmt.Println(warningStyle.Render("Operation cancelled."))
		return
	}

	cfg.RemoveCustomPath(pathToRemove)
	if err := cfg.Save(); err != nil {
		fmt.Println(errorStyle.Render("Error saving config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("✓ Removed pinned installation."))
}

func handleAddPath(args []string) {
	if len(args) < 1 {
		fmt.Println(errorStyle.Render("Usage: jrt add-path <directory>"))
		fmt.Println(infoStyle.Render("Example: jrt add-path /opt/devtools/java"))
		fmt.Println()
		fmt.Println(theme.Faint.Render("This adds a directory where the detector will search for Java installations."))
		os.Exit(1)
	}

	path := args[0]

	detector := java.NewDetector()
	if !detector.IsValidSearchPath(path) {
		fmt.Printf("Invalid directory path: %s\n", path)
		fmt.Println("Make sure the path exists and is a directory.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.HasSearchPath(path) {
		fmt.Println(warningStyle.Render("This search path is already configured."))
		return
	}

	confirmed, err := confirmAction(
		"Add search path?",
		fmt.Sprintf("Path: %s\n\nThe detector will scan this directory for Java installations.", path),
	)
	if err != nil || !confirmed {
		fmt.Println("Operation cancelled.")
		return
	}

	cfg.AddSearchPath(path)
	if err := cfg.Save(); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(theme.SuccessMessage("Added search path:"))
	fmt.Println("  " + theme.PathStyle.Render(path))
	fmt.Println(theme.Faint.Render("Run ") + theme.Code.Render("jrt list") + theme.Faint.Render(" to see detected runtimes"))
}

func handleRemovePath(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	var pathToRemove string

	// Interactive mode if no path specified
	if len(args) < 1 {
		if len(cfg.SearchPaths) == 0 {
			fmt.Println(theme.InfoMessage("No custom search paths to remove"))
			fmt.Println("  " + theme.Faint.Render("Use ") + theme.Code.Render("jrt add-path <directory>") + theme.Faint.Render(" to add one"))
			return
		}

		detector := java.NewDetector()
		maxW := 0
		for _, p := range cfg.SearchPaths {
			if w := lipgloss.Width(currentStyle.Render(p)); w > maxW {
				maxW = w
			}
		}

		options := make([]huh.Option[string], len(cfg.SearchPaths))
		for i, p := range cfg.SearchPaths {
			renderedPath := currentStyle.Render(p)
			pad := ""
			if w := lipgloss.Width(renderedPath); w < maxW {
				pad = strings.Repeat(" ", maxW-w)
			}
			status := theme.Faint.Render("Not found")
			if detector.IsValidSearchPath(p) {
				status = theme.SuccessStyle.Render("✓ Exists")
			}
			options[i] = huh.NewOption(fmt.Sprintf("%s%s  %s", renderedPath, pad, status), p)
		}

		err := huh.NewSelect[string]().
			Title(theme.Subtitle.Render("Select Search Path to Remove")).
			Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
			Options(options...).
			Value(&pathToRemove).
			Run()

		if err != nil {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
			os.Exit(1)
		}
	} else {
		pathToRemove = args[0]
	}

	if !cfg.HasSearchPath(pathToRemove) {
		fmt.Println(warningStyle.Render("This path is not in the search paths list."))
		return
	}

	confirmed, err := confirmAction(
		"Remove search path?",
		fmt.Sprintf("Path: %s", pathToRemove),
	)
	if err != nil || !confirmed {
		fmt.Println(warningStyle.Render("Operation cancelled."))
		return
	}

	cfg.RemoveSearchPath(pathToRemove)
	if err := cfg.Save(); err != nil {
		fmt.Println(errorStyle.Render("Error saving config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("✓ Removed search path."))
}

func handleListPaths() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	detector := java.NewDetector()

	fmt.Println(titleStyle.Render("Search Paths"))
	fmt.Println()

	fmt.Println(theme.Subtitle.Render("Standard locations"))
	for _, p := range java.DefaultSearchPaths() {
		status := theme.Faint.Render("not present")
		if detector.IsValidSearchPath(p) {
			status = successStyle.Render("exists")
		}
		fmt.Printf("  %s  %s\n", theme.PathStyle.Render(p), status)
	}
	fmt.Println()

	fmt.Println(theme.Subtitle.Render("Configured search paths"))
	if len(cfg.SearchPaths) == 0 {
		fmt.Println("  " + theme.Faint.Render("none - add one with ") + theme.Code.Render("jrt add-path <dir>"))
	} else {
		for _, p := range cfg.SearchPaths {
			status := theme.Faint.Render("not present")
			if detector.IsValidSearchPath(p) {
				status = successStyle.Render("exists")
			}
			fmt.Printf("  %s  %s\n", theme.PathStyle.Render(p), status)
		}
	}
	fmt.Println()

	fmt.Println(theme.Subtitle.Render("Pinned installations"))
	if len(cfg.CustomPaths) == 0 {
		fmt.Println("  " + theme.Faint.Render("none - pin one with ") + theme.Code.Render("jrt add <path>"))
	} else {
		for _, p := range cfg.CustomPaths {
			status := theme.Faint.Render("invalid")
			if detector.IsInstallationRoot(p) {
				status = successStyle.Render("valid")
			}
			fmt.Printf("  %s  %s\n", theme.PathStyle.Render(p), status)
		}
	}
}

func handleDoctor() {
	fmt.Println(titleStyle.Render("Java Runtime Detector - System Diagnostics"))
	fmt.Println()

	issues := []string{}
	warnings := []string{}

	detector := java.NewDetector()
	currentJavaHome, _ := env.JavaHome()

	// 1. Check JAVA_HOME
	fmt.Println(theme.LabelStyle.Render("Checking JAVA_HOME..."))
	if currentJavaHome == "" {
		fmt.Println("  " + theme.WarningMessage("JAVA_HOME is not set"))
		warnings = append(warnings, "JAVA_HOME is not set")
	} else if detector.IsInstallationRoot(currentJavaHome) {
		fmt.Printf("  %s %s\n", theme.SuccessMessage("JAVA_HOME is set and valid:"), theme.PathStyle.Render(currentJavaHome))
	} else {
		fmt.Printf("  %s %s\n", theme.ErrorStyle.Render("✗ JAVA_HOME is set but invalid:"), theme.PathStyle.Render(currentJavaHome))
		issues = append(issues, fmt.Sprintf("JAVA_HOME points to invalid location: %s", currentJavaHome))
	}
	fmt.Println()

	// 2. Check PATH
	fmt.Println(theme.LabelStyle.Render("Checking PATH..."))
	javaInPath := false
	for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
		if detector.IsInstallationRoot(filepath.Dir(entry)) {
			javaInPath = true
			break
		}
	}
	if javaInPath {
		fmt.Println("  " + theme.SuccessMessage("A java launcher is reachable through PATH"))
	} else {
		fmt.Println("  " + theme.WarningMessage("No java launcher found in PATH"))
		warnings = append(warnings, "No java launcher found in PATH")
	}
	fmt.Println()

	// 3. Check Java installations with table
	fmt.Println(theme.LabelStyle.Render("Checking Java installations..."))
	runtimes, err := detector.FindAll()
	if err != nil {
		fmt.Printf("  %s %v\n", theme.ErrorStyle.Render("✗ Error finding Java runtimes:"), err)
		issues = append(issues, fmt.Sprintf("Error detecting Java installations: %v", err))
	} else if len(runtimes) == 0 {
		fmt.Println("  " + theme.WarningMessage("No Java installations found"))
		warnings = append(warnings, "No Java installations detected. Add search paths with 'jrt add-path'.")
	} else {
		fmt.Printf("  %s %d\n", theme.SuccessMessage("Found installations:"), len(runtimes))
		fmt.Println(renderRuntimeTable(runtimes, currentJavaHome))
	}
	fmt.Println()

	// 4. Check configuration file
	fmt.Println(theme.LabelStyle.Render("Checking configuration..."))
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  ✗ Error loading config: %v\n", err)
		issues = append(issues, fmt.Sprintf("Configuration file error: %v", err))
	} else {
		fmt.Println("  " + theme.SuccessMessage("Configuration loaded"))
		if len(cfg.SearchPaths) > 0 {
			fmt.Println("  " + theme.SuccessMessage(fmt.Sprintf("Search paths configured: %d", len(cfg.SearchPaths))))
		}
		if len(cfg.CustomPaths) > 0 {
			fmt.Println("  " + theme.SuccessMessage(fmt.Sprintf("Pinned installations: %d", len(cfg.CustomPaths))))
			for _, p := range cfg.CustomPaths {
				if !detector.IsInstallationRoot(p) {
					fmt.Println("  " + theme.WarningMessage("Pinned installation no longer valid: "+p))
					warnings = append(warnings, fmt.Sprintf("Pinned installation no longer valid: %s", p))
				}
			}
		}
	}
	fmt.Println()

	// Summary
	fmt.Println(titleStyle.Render("Diagnostics Summary"))
	fmt.Println()

	if len(issues) == 0 && len(warnings) == 0 {
		fmt.Println(theme.SuccessBox.Render(theme.SuccessMessage("All checks passed!") + "\n\nYour Java environment is properly configured."))
		return
	}

	var summaryContent string
	if len(issues) > 0 {
		summaryContent += errorStyle.Render(fmt.Sprintf("Issues Found: %d", len(issues))) + "\n\n"
		for _, issue := range issues {
			summaryContent += theme.ErrorMessage(issue) + "\n"
		}
	}
	if len(warnings) > 0 {
		if len(issues) > 0 {
			summaryContent += "\n"
		}
		summaryContent += warningStyle.Render(fmt.Sprintf("Warnings: %d", len(warnings))) + "\n\n"
		for _, warning := range warnings {
			summaryContent += theme.WarningMessage(warning) + "\n"
		}
	}

	fmt.Println(theme.Box.Render(summaryContent))
}

// renderRuntimeTable renders detected runtimes as a themed table, marking the
// one JAVA_HOME points at.
func renderRuntimeTable(runtimes []java.Runtime, currentJavaHome string) string {
	headerStyle := theme.TableHeader
	cellStyle := theme.TableCell

	// Runtime paths are canonical; resolve JAVA_HOME the same way so a
	// symlinked home still matches.
	if currentJavaHome != "" {
		if resolved, err := filepath.EvalSymlinks(currentJavaHome); err == nil {
			currentJavaHome = resolved
		}
	}

	var rows []string
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
		headerStyle.Width(9).Render("Current"),
		headerStyle.Width(14).Render("Version"),
		headerStyle.Width(20).Render("Vendor"),
		headerStyle.Width(10).Render("Arch"),
		headerStyle.Render("Path"),
	))

	for _, rt := range runtimes {
		currentMark := ""
		versionStr := rt.Version
		if versionStr == "" {
			versionStr = theme.Faint.Render("unknown")
		}
		vendor := rt.Vendor
		if vendor == "" {
			vendor = theme.Faint.Render("-")
		}
		arch := rt.Arch
		if arch == "" {
			arch = theme.Faint.Render("-")
		}
		if currentJavaHome != "" && rt.Equal(java.Runtime{Path: filepath.Clean(currentJavaHome)}) {
			currentMark = theme.SuccessMessage("")
			if rt.Version != "" {
				versionStr = currentStyle.Render(rt.Version)
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
			cellStyle.Width(9).Align(lipgloss.Center).Render(currentMark),
			cellStyle.Width(14).Render(versionStr),
			cellStyle.Width(20).Render(vendor),
			cellStyle.Width(10).Render(arch),
			theme.PathStyle.Render(rt.Path),
		))
	}

	return theme.TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func printVersion() {
	linkStyle := lipgloss.NewStyle().
		Foreground(theme.Info).
		Underline(true)

	fmt.Printf("%s %s %s\n",
		theme.Subtitle.Render("Java Runtime Detector (jrt)"),
		theme.Faint.Render("version"),
		theme.Code.Render(Version))
	fmt.Println(linkStyle.Render("https://github.com/jrt-dev/jrt"))
}

func printUsage() {
	banner := `     ██╗██████╗ ████████╗
     ██║██╔══██╗╚══██╔══╝
     ██║██████╔╝   ██║
██   ██║██╔══██╗   ██║
╚█████╔╝██║  ██║   ██║
 ╚════╝ ╚═╝  ╚═╝   ╚═╝`

	fmt.Println(theme.Banner.Render(banner))
	fmt.Println(theme.Subtitle.Render("Java Runtime Detector"))
	fmt.Println(theme.Faint.Render("Find every Java installation on this machine"))
	fmt.Println()

	fmt.Println(theme.Title.Render("USAGE"))
	fmt.Println(theme.Faint.Render("  jrt <command> [arguments]"))
	fmt.Println()

	categoryStyle := theme.Subtitle
	commandStyle := theme.CommandStyle
	descStyle := theme.Faint

	fmt.Println(categoryStyle.Render("DETECTION"))
	fmt.Printf("  %s               %s\n",
		commandStyle.Render("list"),
		descStyle.Render("List all detected Java runtimes"))
	fmt.Printf("  %s <dir...>      %s\n",
		commandStyle.Render("scan"),
		descStyle.Render("Scan directories for Java runtimes (--depth N)"))
	fmt.Printf("  %s                %s\n",
		commandStyle.Render("env"),
		descStyle.Render("Show runtimes referenced by environment variables"))
	fmt.Printf("  %s            %s\n",
		commandStyle.Render("current"),
		descStyle.Render("Show the runtime JAVA_HOME points at"))
	fmt.Printf("  %s             %s\n",
		commandStyle.Render("doctor"),
		descStyle.Render("Run diagnostics on your Java environment"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("PINNED INSTALLATIONS"))
	fmt.Printf("  %s <path>         %s\n",
		commandStyle.Render("add"),
		descStyle.Render("Pin a specific Java installation"))
	fmt.Printf("  %s [path]      %s\n",
		commandStyle.Render("remove"),
		descStyle.Render("Remove a pinned installation"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("SEARCH PATHS"))
	fmt.Printf("  %s <dir>     %s\n",
		commandStyle.Render("add-path"),
		descStyle.Render("Add directory to scan for Java installations"))
	fmt.Printf("  %s [dir]  %s\n",
		commandStyle.Render("remove-path"),
		descStyle.Render("Remove directory from search paths"))
	fmt.Printf("  %s         %s\n",
		commandStyle.Render("list-paths"),
		descStyle.Render("Show all search paths (standard + custom)"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("OTHER"))
	fmt.Printf("  %s             %s\n",
		commandStyle.Render("update"),
		descStyle.Render("Check for and install jrt updates"))
	fmt.Printf("  %s            %s\n",
		commandStyle.Render("version"),
		descStyle.Render("Show version information"))
	fmt.Printf("  %s               %s\n",
		commandStyle.Render("help"),
		descStyle.Render("Show this help message"))
	fmt.Println()

	fmt.Println(theme.Title.Render("EXAMPLES"))
	fmt.Println("  " + theme.Code.Render("jrt list") + "                    # List detected runtimes")
	fmt.Println("  " + theme.Code.Render("jrt scan /opt --depth 3") + "     # Scan /opt three levels deep")
	fmt.Println("  " + theme.Code.Render("jrt env") + "                     # Runtimes from JAVA_HOME and PATH")
	fmt.Println("  " + theme.Code.Render("jrt add /opt/jdk-21") + "         # Pin a custom installation")
	fmt.Println("  " + theme.Code.Render("jrt doctor") + "                  # Check system health")
	fmt.Println()

	fmt.Println(theme.Faint.Italic(true).Render("Detection is read-only: jrt never installs, runs or modifies a JDK."))
	fmt.Println()
	fmt.Println(theme.Faint.Italic(true).Render("For more information: https://github.com/jrt-dev/jrt"))
}

// confirmAction shows a confirmation prompt
func confirmAction(title, description string) (bool, error) {
	var confirmed bool

	err := huh.NewConfirm().
		Title(theme.Subtitle.Render(title)).
		Description(theme.Faint.Render(description)).
		Affirmative(theme.SuccessStyle.Render("Yes")).
		Negative(theme.ErrorStyle.Render("No")).
		Value(&confirmed).
		Run()

	return confirmed, err
}

func handleUpdate() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	if !cfg.UpdateConfig.Enabled {
		fmt.Println(warningStyle.Render("Updates are disabled in configuration."))
		fmt.Println(theme.Faint.Render("To enable, edit ~/.config/jrt/jrt.json and set update_config.enabled to true"))
		return
	}

	upd, err := updater.NewUpdater(cfg, Version)
	if err != nil {
		fmt.Println(errorStyle.Render("Error initializing updater: " + err.Error()))
		os.Exit(1)
	}

	updater.ShowCheckingForUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), updater.UpdateTimeout)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render("Update check failed: " + err.Error()))
		os.Exit(1)
	}

	if release == nil {
		updater.ShowAlreadyUpToDate(Version)
		return
	}

	action, err := upd.PromptForUpdate(release)
	if err != nil {
		fmt.Println(warningStyle.Render("Update cancelled."))
		return
	}

	if action != "update" {
		if action == "skip" {
			fmt.Println(theme.InfoMessage(fmt.Sprintf("Skipped version %s", release.Version())))
		} else {
			fmt.Println(theme.InfoMessage("Update postponed"))
		}
		return
	}

	updater.ShowDownloadingUpdate(release.Version())

	if err := upd.PerformUpdate(ctx, release); err != nil {
		fmt.Println()
		fmt.Println(errorStyle.Render("Update failed: " + err.Error()))
		fmt.Println()
		fmt.Println(theme.Faint.Render("Please try again or download manually from:"))
		fmt.Println(theme.Faint.Render("https://github.com/jrt-dev/jrt/releases"))
		os.Exit(1)
	}

	updater.ShowUpdateSuccess(release.Version())
}

func checkForUpdateBackground() {
	// Never let the update check break a detection command
	defer func() {
		if r := recover(); r != nil {
			// Silently ignore panics in background check
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	upd, err := updater.NewUpdater(cfg, Version)
	if err != nil {
		return
	}

	if !upd.ShouldCheckForUpdate() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil || release == nil {
		return
	}

	updater.ShowUpdateNotification(Version, release.Version())
}
