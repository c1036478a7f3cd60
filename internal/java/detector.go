package java

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"jrt/internal/config"

	"github.com/sirupsen/logrus"
)

var (
	jdkDirRe     = regexp.MustCompile(`jdk-?(\d+(?:\.\d+)*(?:_\d+)?)`)
	legacyDirRe  = regexp.MustCompile(`jdk(1\.\d+\.\d+_\d+)`)
	javaDirRe    = regexp.MustCompile(`java-?(\d+(?:\.\d+)*)`)
	openjdkDirRe = regexp.MustCompile(`openjdk-?(\d+(?:\.\d+)*)`)
)

// Detector finds Java installations on the system
type Detector struct {
	standardPaths []string
	config        *config.Config
}

// NewDetector creates a new Java detector
func NewDetector() *Detector {
	return &Detector{standardPaths: StandardPaths()}
}

// StandardPaths returns the built-in directories scanned for installations
func StandardPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"C:\\Program Files\\Java",
			"C:\\Program Files (x86)\\Java",
			"C:\\Program Files\\Eclipse Adoptium",
			"C:\\Program Files\\Eclipse Foundation",
			"C:\\Program Files\\Zulu",
			"C:\\Program Files\\Amazon Corretto",
			"C:\\Program Files\\Microsoft",
		}
	case "darwin":
		return withSDKMan("/Library/Java/JavaVirtualMachines")
	default:
		return withSDKMan("/usr/lib/jvm", "/usr/java", "/opt/java")
	}
}

func withSDKMan(paths ...string) []string {
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".sdkman", "candidates", "java"))
	}
	return paths
}

// FindAll finds all Java installations (auto-detected + custom)
func (d *Detector) FindAll() ([]Version, error) {
	cfg := d.config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			logrus.WithError(err).Warn("Ignoring unreadable config")
			loaded = &config.Config{}
		}
		cfg = loaded
	}

	searchPaths := append(append([]string{}, d.standardPaths...), cfg.SearchPaths...)

	// Deduplicate by path (case-insensitive)
	seen := make(map[string]Version)

	for _, basePath := range searchPaths {
		entries, err := os.ReadDir(basePath)
		if err != nil {
			logrus.WithField("path", basePath).Debug("Skipping search path")
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			javaPath := filepath.Clean(filepath.Join(basePath, entry.Name()))
			// macOS bundles keep the JDK under Contents/Home
			if home := filepath.Join(javaPath, "Contents", "Home"); d.IsValidJavaPath(home) {
				javaPath = home
			}
			if d.IsValidJavaPath(javaPath) {
				seen[strings.ToLower(javaPath)] = d.Classify(Version{Version: d.GetVersion(javaPath), Path: javaPath})
			}
		}
	}

	for _, customPath := range cfg.CustomPaths {
		if !d.IsValidJavaPath(customPath) {
			logrus.WithField("path", customPath).Debug("Skipping invalid custom path")
			continue
		}
		norm := filepath.Clean(customPath)
		// If already seen as auto, upgrade to custom
		seen[strings.ToLower(norm)] = d.Classify(Version{Version: d.GetVersion(norm), Path: norm, IsCustom: true})
	}

	versions := make([]Version, 0, len(seen))
	for _, v := range seen {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return strings.ToLower(versions[i].Path) < strings.ToLower(versions[j].Path)
	})

	return versions, nil
}

// Classify fills in the runtime line of v
func (d *Detector) Classify(v Version) Version {
	r, err := Parse(v.Version)
	v.Runtime = r
	v.Classified = err == nil
	return v
}

// IsValidJavaPath checks if a path is a valid Java installation
func (d *Detector) IsValidJavaPath(path string) bool {
	info, err := os.Stat(JavaExecutable(path))
	return err == nil && !info.IsDir()
}

// IsValidSearchPath checks if a path is a valid directory to search for Java installations
func (d *Detector) IsValidSearchPath(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// GetVersion extracts the version from a Java installation path
func (d *Detector) GetVersion(javaPath string) string {
	// First, try to get version by running java -version
	output, err := runJava(JavaExecutable(javaPath))
	if err == nil {
		if version := parseVersionOutput(string(output)); version != "" {
			return version
		}
	}
	logrus.WithField("path", javaPath).Debug("Falling back to directory name for version")

	return parseVersionFromDirName(installDirName(javaPath))
}

// installDirName returns the directory that names an installation,
// skipping the Contents/Home suffix of macOS bundles
func installDirName(javaPath string) string {
	javaPath = filepath.Clean(javaPath)
	if filepath.Base(javaPath) == "Home" && filepath.Base(filepath.Dir(javaPath)) == "Contents" {
		return filepath.Base(filepath.Dir(filepath.Dir(javaPath)))
	}
	return filepath.Base(javaPath)
}

// parseVersionFromDirName extracts version from directory names like "jdk-17" or "jdk1.8.0_322"
func parseVersionFromDirName(dirName string) string {
	dirName = strings.ToLower(dirName)

	// jdk1.8.0_322 before jdk-17 so the legacy form keeps its update suffix
	for _, re := range []*regexp.Regexp{legacyDirRe, jdkDirRe, openjdkDirRe, javaDirRe} {
		if matches := re.FindStringSubmatch(dirName); len(matches) > 1 {
			return matches[1]
		}
	}

	// Return dir name as-is if no pattern matches
	return dirName
}
