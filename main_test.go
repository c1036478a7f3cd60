package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"jrt/internal/config"
	"jrt/internal/java"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	t.Setenv("JRT_DEBUG", "")

	args := setupLogging([]string{"--debug", "parse", "17"})
	assert.Equal(t, []string{"parse", "17"}, args)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	args = setupLogging([]string{"list"})
	assert.Equal(t, []string{"list"}, args)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	t.Setenv("JRT_DEBUG", "1")
	setupLogging(nil)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestRunParse(t *testing.T) {
	require.NoError(t, run("parse", []string{"17.0.1"}))
	require.NoError(t, run("parse", []string{"1.7"}))

	err := run("parse", []string{"invalid"})
	assert.EqualError(t, err, "Could not parse Java Runtime version: invalid")
	assert.ErrorIs(t, err, java.ErrInvalidFormat)
}

func TestRunUnknownCommand(t *testing.T) {
	err := run("frobnicate", nil)
	assert.ErrorIs(t, err, errUsage)
	assert.ErrorContains(t, err, "frobnicate")
}

func TestRunVersionAndHelp(t *testing.T) {
	assert.NoError(t, run("version", nil))
	assert.NoError(t, run("--help", nil))
}

func TestRunSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	assert.ErrorIs(t, run("add-path", nil), errUsage)
	assert.ErrorIs(t, run("remove-path", nil), errUsage)
	assert.ErrorContains(t, run("add-path", []string{filepath.Join(dir, "missing")}), "invalid directory path")

	require.NoError(t, run("add-path", []string{dir}))
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.HasSearchPath(dir))

	require.NoError(t, run("list-paths", nil))

	require.NoError(t, run("remove-path", []string{dir}))
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasSearchPath(dir))
}

func TestRunCurrentWithoutJava(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("system JAVA_HOME may be set in the registry")
	}
	t.Setenv("JAVA_HOME", "")
	t.Setenv("PATH", t.TempDir())

	assert.ErrorIs(t, run("current", nil), java.ErrNoJava)
}

func TestRuntimeBadge(t *testing.T) {
	assert.Contains(t, runtimeBadge(java.Java17), "Java 17")
	assert.Contains(t, runtimeBadge(java.Other), "Other")
}

// fakeInstall creates dir/bin/java so the detector accepts dir as a JDK
func fakeInstall(t *testing.T, dir string) string {
	t.Helper()
	exe := java.JavaExecutable(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(exe), 0755))
	require.NoError(t, os.WriteFile(exe, nil, 0755))
	return filepath.Clean(dir)
}

// stubPrompts answers confirmations and selections without a terminal
func stubPrompts(t *testing.T, confirmed bool, selected string) {
	t.Helper()
	origConfirm, origSelect := confirmAction, selectCustomPath
	t.Cleanup(func() { confirmAction, selectCustomPath = origConfirm, origSelect })

	confirmAction = func(string, string) (bool, error) { return confirmed, nil }
	selectCustomPath = func(*java.Detector, []string) (string, error) {
		if selected == "" {
			return "", errors.New("user aborted")
		}
		return selected, nil
	}
}

func TestRunCustomPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	jdk := fakeInstall(t, filepath.Join(t.TempDir(), "jdk-17.0.1"))

	assert.ErrorIs(t, run("add", nil), errUsage)
	assert.ErrorContains(t, run("add", []string{filepath.Dir(jdk)}), "invalid Java installation path")

	stubPrompts(t, false, "")
	assert.ErrorIs(t, run("add", []string{jdk}), errCancelled)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasCustomPath(jdk))

	stubPrompts(t, true, "")
	require.NoError(t, run("add", []string{jdk}))
	require.NoError(t, run("add", []string{jdk}))
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{jdk}, cfg.CustomPaths)

	require.NoError(t, run("remove", []string{" " + jdk + " "}))
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CustomPaths)

	// Nothing configured: remove without a path is a no-op
	require.NoError(t, run("remove", nil))
}

func TestRunRemoveInteractive(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	jdk := fakeInstall(t, filepath.Join(t.TempDir(), "jdk1.8.0_322"))

	stubPrompts(t, true, "")
	require.NoError(t, run("add", []string{jdk}))

	assert.ErrorIs(t, run("remove", nil), errCancelled)

	stubPrompts(t, true, jdk)
	require.NoError(t, run("remove", nil))
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasCustomPath(jdk))
}

func TestDescribeInstall(t *testing.T) {
	jdk := fakeInstall(t, filepath.Join(t.TempDir(), "jdk1.8.0_322"))
	assert.Equal(t, "Java 8 (1.8.0_322)", describeInstall(java.NewDetector(), jdk))
}

func TestRunCurrentInvalidJavaHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("system JAVA_HOME may be set in the registry")
	}
	t.Setenv("JAVA_HOME", t.TempDir())

	assert.ErrorIs(t, run("current", nil), errInvalidJavaHome)
}

func TestSearchPathRemoveTrimsInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	require.NoError(t, run("add-path", []string{dir}))
	require.NoError(t, run("remove-path", []string{"  " + dir}))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SearchPaths)
}
