package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	t.Setenv("ROOM_DIRECTORY_TEST_VAR", "")
	assert.Equal(t, "fallback", Env("ROOM_DIRECTORY_TEST_VAR", "fallback"))

	t.Setenv("ROOM_DIRECTORY_TEST_VAR", "set")
	assert.Equal(t, "set", Env("ROOM_DIRECTORY_TEST_VAR", "fallback"))
}

func TestBool(t *testing.T) {
	for name, tc := range map[string]struct {
		value string
		def   bool
		want  bool
	}{
		"Empty":    {"", true, true},
		"True":     {"true", false, true},
		"One":      {"1", false, true},
		"False":    {"false", true, false},
		"Garbage":  {"maybe", true, true},
		"Garbage2": {"maybe", false, false},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Bool(tc.value, tc.def))
		})
	}
}
