package java

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"

	"jrt/internal/env"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoJava is returned when no java executable can be located
	ErrNoJava = errors.New("no Java executable found")
	// ErrNoVersion is returned when java -version prints no version line
	ErrNoVersion = errors.New("no version in java -version output")
)

var (
	versionLineRe = regexp.MustCompile(`version\s+"([^"]+)"`)
	// openjdk 11.0.12 2021-07-20 (some builds print the version unquoted)
	bareVersionRe = regexp.MustCompile(`(?m)^(?:openjdk|java)\s+(\d[^\s]*)`)
)

// runJava runs a java executable with -version and returns its combined output
var runJava = func(javaExe string) ([]byte, error) {
	return exec.Command(javaExe, "-version").CombinedOutput()
}

// ExecutableName returns the java launcher file name for this platform
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// JavaExecutable returns the launcher path inside a Java installation
func JavaExecutable(javaHome string) string {
	return filepath.Join(javaHome, "bin", ExecutableName())
}

// ActiveVersion returns the java.version reported by the active runtime.
// JAVA_HOME wins over PATH.
func ActiveVersion() (string, error) {
	javaExe, err := activeExecutable()
	if err != nil {
		return "", err
	}

	output, err := runJava(javaExe)
	if err != nil {
		return "", fmt.Errorf("failed to run %s -version: %w", javaExe, err)
	}

	version := parseVersionOutput(string(output))
	if version == "" {
		return "", fmt.Errorf("%s: %w", javaExe, ErrNoVersion)
	}
	return version, nil
}

func activeExecutable() (string, error) {
	if javaHome := env.JavaHome(); javaHome != "" {
		logrus.WithField("java_home", javaHome).Debug("Using JAVA_HOME")
		return JavaExecutable(javaHome), nil
	}

	javaExe, err := exec.LookPath(ExecutableName())
	if err != nil {
		return "", fmt.Errorf("%w: JAVA_HOME is not set and java is not on PATH", ErrNoJava)
	}
	logrus.WithField("java", javaExe).Debug("Using java from PATH")
	return javaExe, nil
}

// parseVersionOutput parses the output of 'java -version'
func parseVersionOutput(output string) string {
	// Look for version patterns like: version "17.0.1"
	if matches := versionLineRe.FindStringSubmatch(output); len(matches) > 1 {
		return matches[1]
	}

	if matches := bareVersionRe.FindStringSubmatch(output); len(matches) > 1 {
		return matches[1]
	}

	return ""
}
