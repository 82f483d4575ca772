package tag

import (
	"os"
	"testing"

	"gotest.tools/assert"
)

func TestDefaults(t *testing.T) {
	os.Setenv("NETFLIX_STACK", "staging")
	defer os.Unsetenv("NETFLIX_STACK")
	os.Unsetenv("EC2_INSTANCE_ID")

	tags := Defaults("oss")
	assert.Equal(t, tags["flavor"], "oss")
	assert.Equal(t, tags["stack"], "staging")
	_, ok := tags["node"]
	assert.Assert(t, !ok)
}
