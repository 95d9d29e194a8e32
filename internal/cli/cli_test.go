package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	_, err := run("migrate", "sideways")
	assert.Error(t, err)

	_, err = run("migrate")
	assert.Error(t, err)
}

func TestImportRejectsUnknownDifficulty(t *testing.T) {
	_, err := run("import", "--difficulty", "impossible")
	assert.ErrorContains(t, err, "difficulty must be")
}

func TestHelpListsCommands(t *testing.T) {
	out, err := run("--help")
	assert.NoError(t, err)
	assert.Contains(t, out, "migrate")
	assert.Contains(t, out, "import")
}
