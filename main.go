package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jrt/internal/config"
	"jrt/internal/env"
	"jrt/internal/java"
	"jrt/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Version is set during build time via ldflags
var Version = "dev"

var (
	successStyle = theme.SuccessStyle
	warningStyle = theme.WarningStyle
	infoStyle    = theme.InfoStyle
	titleStyle   = theme.Title
	currentStyle = theme.CurrentStyle
)

var (
	// errUsage marks errors that should be followed by the usage hint
	errUsage = errors.New("usage")
	// errCancelled is returned when a prompt is declined or aborted
	errCancelled = errors.New("operation cancelled")
	// errInvalidJavaHome is returned when JAVA_HOME has no java launcher
	errInvalidJavaHome = errors.New("JAVA_HOME path looks invalid")
)

func main() {
	args := setupLogging(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(args[0], args[1:]); err != nil {
		fmt.Println(theme.ErrorMessage(err.Error()))
		if errors.Is(err, errUsage) {
			fmt.Println(theme.Faint.Render("Run 'jrt help' for usage"))
		}
		os.Exit(1)
	}
}

// setupLogging strips --debug from args and configures logrus
func setupLogging(args []string) []string {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if v := os.Getenv("JRT_DEBUG"); v != "" && v != "0" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	rest := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--debug" {
			logrus.SetLevel(logrus.DebugLevel)
			continue
		}
		rest = append(rest, a)
	}
	return rest
}

func run(command string, args []string) error {
	switch command {
	case "current":
		return handleCurrent()
	case "parse":
		return handleParse(args)
	case "list":
		return handleList()
	case "add":
		return handleAdd(args)
	case "remove":
		return handleRemove(args)
	case "doctor":
		return handleDoctor()
	case "add-path":
		return handleAddPath(args)
	case "remove-path":
		return handleRemovePath(args)
	case "list-paths":
		return handleListPaths()
	case "version", "-v", "--version":
		printVersion()
		return nil
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// runtimeBadge renders a runtime line with its own color
func runtimeBadge(r java.Runtime) string {
	switch r {
	case java.Java8, java.Java11, java.Java17:
		return theme.SuccessStyle.Render(r.String())
	default:
		return theme.Faint.Render(r.String())
	}
}

func handleCurrent() error {
	fmt.Println(titleStyle.Render("Current Java"))
	fmt.Println()

	javaHome := env.JavaHome()
	if javaHome != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("JAVA_HOME:"), theme.PathStyle.Render(javaHome))
		if !java.NewDetector().IsValidJavaPath(javaHome) {
			fmt.Println(theme.Faint.Render("No java launcher under " + filepath.Dir(java.JavaExecutable(javaHome))))
			return errInvalidJavaHome
		}
	} else {
		fmt.Println(warningStyle.Render("JAVA_HOME is not set, using java from PATH"))
	}

	version, r, err := java.CurrentVersion()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Version:"), currentStyle.Render(version))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Runtime:"), runtimeBadge(r))
	return nil
}

func handleParse(args []string) error {
	var version string
	if len(args) > 0 {
		version = args[0]
	} else {
		if err := promptVersion(&version); err != nil {
			return fmt.Errorf("input cancelled: %w", err)
		}
	}

	r, err := java.Parse(version)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n", theme.Code.Render(version), theme.Faint.Render("→"), runtimeBadge(r))
	return nil
}

// promptVersion asks for a version string and validates it before returning
func promptVersion(version *string) error {
	return huh.NewInput().
		Title(theme.Subtitle.Render("Java version")).
		Description(theme.Faint.Render("e.g. 1.8.0_321, 11.0.16+8, 17")).
		Validate(func(s string) error {
			_, err := java.Parse(s)
			return err
		}).
		Value(version).
		Run()
}

func handleList() error {
	detector := java.NewDetector()

	var versions []java.Version
	err := java.WithScanner("Scanning for Java installations...", func() error {
		var err error
		versions, err = detector.FindAll()
		return err
	})
	if errors.Is(err, java.ErrScanCancelled) {
		return errCancelled
	}
	if err != nil {
		return fmt.Errorf("error finding Java versions: %w", err)
	}

	if len(versions) == 0 {
		fmt.Println(warningStyle.Render("No Java installations found."))
		fmt.Println(infoStyle.Render("Run 'jrt add-path <directory>' to scan another location."))
		return nil
	}

	current := env.JavaHome()

	fmt.Println(titleStyle.Render("Available Java Versions:"))
	fmt.Println()

	for _, v := range versions {
		marker := "  "
		versionStr := v.Version
		if strings.EqualFold(v.Path, current) {
			marker = "→ "
			versionStr = currentStyle.Render(v.Version)
		}

		source := "auto"
		if v.IsCustom {
			source = "custom"
		}

		badge := runtimeBadge(v.Runtime)
		if !v.Classified {
			badge = theme.WarningStyle.Render("unknown")
		}

		fmt.Printf("%s%s %s %s %s\n",
			marker,
			padRight(versionStr, 15),
			padRight(badge, 9),
			v.Path,
			theme.Faint.Render("("+source+")"))
	}

	if current == "" {
		fmt.Println()
		fmt.Println(theme.WarningMessage(" JAVA_HOME is not set"))
	}
	return nil
}

// padRight pads s to width considering its visual width
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// confirmAction shows a confirmation prompt
var confirmAction = func(title, description string) (bool, error) {
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

// selectCustomPath asks which configured custom installation to act on
var selectCustomPath = func(detector *java.Detector, paths []string) (string, error) {
	options := make([]huh.Option[string], len(paths))
	for i, p := range paths {
		v := detector.Classify(java.Version{Version: detector.GetVersion(p), Path: p})
		label := fmt.Sprintf("%s %s %s", padRight(currentStyle.Render(v.Version), 15), p, theme.Faint.Render("("+v.Runtime.String()+")"))
		options[i] = huh.NewOption(label, p)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(theme.Subtitle.Render("Select Java Installation to Remove")).
		Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
		Options(options...).
		Value(&selected).
		Run()
	return selected, err
}

// describeInstall returns "Java 17 (17.0.1)" style text for a prompt
func describeInstall(detector *java.Detector, path string) string {
	v := detector.Classify(java.Version{Version: detector.GetVersion(path), Path: path})
	return fmt.Sprintf("%s (%s)", v.Runtime, v.Version)
}

func handleAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: jrt add <path>", errUsage)
	}
	path := strings.TrimSpace(args[0])

	detector := java.NewDetector()
	if !detector.IsValidJavaPath(path) {
		return fmt.Errorf("invalid Java installation path: %s (expected %s)", path, java.JavaExecutable(path))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.HasCustomPath(path) {
		fmt.Println(warningStyle.Render("This path is already in the custom paths list."))
		return nil
	}

	desc := describeInstall(detector, path)
	confirmed, err := confirmAction(fmt.Sprintf("Add %s?", desc), fmt.Sprintf("Path: %s", path))
	if err != nil || !confirmed {
		return errCancelled
	}

	cfg.AddCustomPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage(fmt.Sprintf("Added %s to custom paths.", desc)))
	return nil
}

func handleRemove(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	detector := java.NewDetector()

	var path string
	if len(args) > 0 {
		path = strings.TrimSpace(args[0])
	} else {
		if len(cfg.CustomPaths) == 0 {
			fmt.Println(infoStyle.Render("No custom Java installations to remove"))
			fmt.Println("  " + theme.Faint.Render("Use ") + theme.Code.Render("jrt add <path>") + theme.Faint.Render(" to add one"))
			return nil
		}
		if path, err = selectCustomPath(detector, cfg.CustomPaths); err != nil {
			return fmt.Errorf("%w: %v", errCancelled, err)
		}
	}

	if !cfg.HasCustomPath(path) {
		fmt.Println(warningStyle.Render("This path is not in the custom paths list."))
		return nil
	}

	confirmed, err := confirmAction(fmt.Sprintf("Remove %s?", describeInstall(detector, path)), fmt.Sprintf("Path: %s", path))
	if err != nil || !confirmed {
		return errCancelled
	}

	cfg.RemoveCustomPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage("Removed from custom paths."))
	return nil
}

func handleAddPath(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: jrt add-path <directory>", errUsage)
	}
	path := args[0]

	detector := java.NewDetector()
	if !detector.IsValidSearchPath(path) {
		return fmt.Errorf("invalid directory path: %s", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.HasSearchPath(path) {
		fmt.Println(warningStyle.Render("This search path is already configured."))
		return nil
	}

	cfg.AddSearchPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage("Added search path:"))
	fmt.Println("  " + theme.PathStyle.Render(path))
	fmt.Println(theme.Faint.Render("Run ") + theme.Code.Render("jrt list") + theme.Faint.Render(" to see detected versions"))
	return nil
}

func handleRemovePath(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: jrt remove-path <directory>", errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !cfg.RemoveSearchPath(args[0]) {
		fmt.Println(warningStyle.Render("Search path not found in configuration."))
		return nil
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage("Removed search path:"))
	fmt.Println("  " + theme.PathStyle.Render(args[0]))
	return nil
}

func handleListPaths() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	detector := java.NewDetector()

	fmt.Println(titleStyle.Render("Java Search Paths"))
	fmt.Println()

	printPaths := func(label string, paths []string) {
		fmt.Println(theme.LabelStyle.Render(label))
		if len(paths) == 0 {
			fmt.Println("  " + theme.Faint.Render("(none)"))
		}
		for _, p := range paths {
			status := theme.ErrorStyle.Render("missing")
			if detector.IsValidSearchPath(p) {
				status = successStyle.Render("found")
			}
			fmt.Printf("  %s %s\n", padRight(theme.PathStyle.Render(p), 50), status)
		}
		fmt.Println()
	}

	printPaths("Standard Paths (built-in):", java.StandardPaths())
	printPaths("Custom Search Paths:", cfg.SearchPaths)

	fmt.Println(theme.Faint.Render("Config: " + config.Path()))
	return nil
}

func printVersion() {
	fmt.Printf("%s %s %s\n",
		theme.Subtitle.Render("Java runtime classifier (jrt)"),
		theme.Faint.Render("version"),
		theme.HighlightText(Version))
}

func printUsage() {
	fmt.Println(theme.Subtitle.Render("Java runtime classifier"))
	fmt.Println(theme.Faint.Render("Detect which major Java runtime is active"))
	fmt.Println()

	fmt.Println(theme.Title.Render("USAGE"))
	fmt.Println(theme.Faint.Render("  jrt [--debug] <command> [arguments]"))
	fmt.Println()

	commands := []struct{ name, desc string }{
		{"current", "Show the active Java runtime and its major line"},
		{"parse [version]", "Classify a version string (prompts when omitted)"},
		{"list", "List detected Java installations"},
		{"add <path>", "Add a custom Java installation"},
		{"remove [path]", "Remove a custom Java installation"},
		{"doctor", "Diagnose JAVA_HOME, PATH and installations"},
		{"add-path <dir>", "Add a directory to scan for installations"},
		{"remove-path <dir>", "Remove a scanned directory"},
		{"list-paths", "Show built-in and custom search paths"},
		{"version", "Show jrt version"},
		{"help", "Show this help"},
	}

	fmt.Println(theme.Subtitle.Render("COMMANDS"))
	for _, c := range commands {
		fmt.Printf("  %s %s\n", padRight(theme.CommandStyle.Render(c.name), 20), theme.Faint.Render(c.desc))
	}
	fmt.Println()
	fmt.Println(theme.Faint.Render("Set JRT_DEBUG=1 for debug logging."))
}
