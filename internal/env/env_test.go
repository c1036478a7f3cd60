//go:build !windows

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaHomeFromProcessEnvironment(t *testing.T) {
	t.Setenv("JAVA_HOME", "/opt/jdk-17")
	assert.Equal(t, "/opt/jdk-17", JavaHome())
}

func TestJavaHomeUnset(t *testing.T) {
	t.Setenv("JAVA_HOME", "")
	assert.Empty(t, JavaHome())
}
