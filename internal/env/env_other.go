//go:build !windows

package env

// GetJavaHome returns the system-wide JAVA_HOME.
// Only Windows keeps one outside the process environment.
func GetJavaHome() (string, error) {
	return "", nil
}
