package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"jrt/internal/config"
	"jrt/internal/env"
	"jrt/internal/java"
	"jrt/internal/theme"
)

var errDiagnostics = errors.New("diagnostics found issues")

// diagnosis is the outcome of the read-only environment checks
type diagnosis struct {
	JavaHome      string
	Issues        []string
	Warnings      []string
	Installations []java.Version
	ByRuntime     map[java.Runtime]int
}

func diagnose(detector *java.Detector) diagnosis {
	d := diagnosis{
		JavaHome:  env.JavaHome(),
		ByRuntime: make(map[java.Runtime]int),
	}

	switch {
	case d.JavaHome == "":
		d.Issues = append(d.Issues, "JAVA_HOME is not set")
	case !detector.IsValidJavaPath(d.JavaHome):
		d.Issues = append(d.Issues, fmt.Sprintf("JAVA_HOME points to invalid location: %s", d.JavaHome))
	case !onPath(filepath.Join(d.JavaHome, "bin")):
		d.Warnings = append(d.Warnings, "JAVA_HOME/bin is not on PATH")
	}

	if _, err := exec.LookPath(java.ExecutableName()); err != nil {
		d.Issues = append(d.Issues, "No java found on PATH")
	}

	if d.JavaHome == "" || detector.IsValidJavaPath(d.JavaHome) {
		if _, _, err := java.CurrentVersion(); err != nil {
			d.Issues = append(d.Issues, fmt.Sprintf("Could not classify the active runtime: %v", err))
		}
	}

	if _, err := config.Load(); err != nil {
		d.Issues = append(d.Issues, fmt.Sprintf("Configuration file error: %v", err))
	}

	versions, err := detector.FindAll()
	if err != nil {
		d.Issues = append(d.Issues, fmt.Sprintf("Error detecting Java installations: %v", err))
	}
	d.Installations = versions
	for _, v := range versions {
		d.ByRuntime[v.Runtime]++
	}
	if len(versions) == 0 {
		d.Warnings = append(d.Warnings, "No Java installations detected")
	}

	return d
}

// onPath reports whether dir is an entry of PATH
func onPath(dir string) bool {
	dir = filepath.Clean(dir)
	for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
		entry = strings.TrimSpace(strings.Trim(entry, "\""))
		if entry != "" && strings.EqualFold(filepath.Clean(entry), dir) {
			return true
		}
	}
	return false
}

func handleDoctor() error {
	fmt.Println(titleStyle.Render("Java Runtime Diagnostics"))
	fmt.Println()

	d := diagnose(java.NewDetector())

	fmt.Println(theme.LabelStyle.Render("JAVA_HOME:"))
	if d.JavaHome == "" {
		fmt.Println("  " + theme.Faint.Render("(not set)"))
	} else {
		fmt.Println("  " + theme.PathStyle.Render(d.JavaHome))
	}
	fmt.Println()

	fmt.Println(theme.LabelStyle.Render("Installations by runtime:"))
	for _, r := range []java.Runtime{java.Java8, java.Java11, java.Java17, java.Other} {
		fmt.Printf("  %s %d\n", padRight(runtimeBadge(r), 9), d.ByRuntime[r])
	}
	fmt.Println()

	if len(d.Issues) == 0 && len(d.Warnings) == 0 {
		fmt.Println(theme.SuccessMessage("All checks passed!"))
		return nil
	}

	for _, issue := range d.Issues {
		fmt.Println(theme.ErrorMessage(issue))
	}
	for _, warning := range d.Warnings {
		fmt.Println(theme.WarningMessage(warning))
	}

	if len(d.Issues) > 0 {
		return fmt.Errorf("%w: %d", errDiagnostics, len(d.Issues))
	}
	return nil
}
