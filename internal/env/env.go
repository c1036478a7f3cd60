package env

import "os"

// JavaHome returns the effective JAVA_HOME.
// The system-wide value wins; the process environment is the fallback.
func JavaHome() string {
	if javaHome, err := GetJavaHome(); err == nil && javaHome != "" {
		return javaHome
	}
	return os.Getenv("JAVA_HOME")
}
