package hashutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{7}$`)

func TestRunIDFormat(t *testing.T) {
	assert.Regexp(t, hexPattern, RunID())
}

func TestRunIDUniqueness(t *testing.T) {
	id1 := RunID()
	id2 := RunID()
	assert.NotEqual(t, id1, id2, "IDs from successive calls should differ due to timestamp")
}

func TestIDFromSeedDeterministic(t *testing.T) {
	id1 := IDFromSeed("fixed-seed")
	id2 := IDFromSeed("fixed-seed")
	assert.Equal(t, id1, id2)
}

func TestIDFromSeedFormat(t *testing.T) {
	assert.Regexp(t, hexPattern, IDFromSeed("any-seed-value"))
}

func TestIDFromSeedDifferentInputs(t *testing.T) {
	assert.NotEqual(t, IDFromSeed("seed-a"), IDFromSeed("seed-b"))
}
