package instructions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "issue_agent.hbs"), []byte("You create issues."), 0o600))

	got, err := Load(dir, "issue_agent")
	require.NoError(t, err)
	assert.Equal(t, "You create issues.", got)
}

func TestLoad_Missing(t *testing.T) {
	got, err := Load(t.TempDir(), "issue_agent")
	require.NoError(t, err)
	assert.Equal(t, Fallback, got)
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be
	require.NoError(t, os.Mkdir(filepath.Join(dir, "issue_agent.hbs"), 0o700))

	_, err := Load(dir, "issue_agent")
	assert.Error(t, err)
}

func TestLoad_ShippedInstructions(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "instructions"), "issue_agent")
	require.NoError(t, err)
	assert.NotEqual(t, Fallback, got)
	assert.Contains(t, got, "create_issue")
}
