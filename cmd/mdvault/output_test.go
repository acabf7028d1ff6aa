package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "edit", Run: func(*cobra.Command, []string) {}}
	addEditFlags(cmd.Flags())
	return cmd
}

func TestGetEditConfigDefaults(t *testing.T) {
	cmd := newEditCommand()
	require.NoError(t, cmd.Execute())

	cfg := getEditConfigFromFlags(cmd)
	assert.Equal(t, "", cfg.OutputPath)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.ShowDiff)
}

func TestGetEditConfigFromFlags(t *testing.T) {
	cmd := newEditCommand()
	cmd.SetArgs([]string{"-o", "out.md", "-n", "--diff"})
	require.NoError(t, cmd.Execute())

	cfg := getEditConfigFromFlags(cmd)
	assert.Equal(t, "out.md", cfg.OutputPath)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.ShowDiff)
}

func TestEmitOverwritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	cfg := editConfig{}
	require.NoError(t, cfg.emit(path, "old", "new"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestEmitWritesToOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	output := filepath.Join(dir, "copy.md")
	require.NoError(t, os.WriteFile(input, []byte("old"), 0o644))

	cfg := editConfig{OutputPath: output}
	require.NoError(t, cfg.emit(input, "old", "new"))

	// Input untouched, output written.
	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "old", string(original))

	copied, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "new", string(copied))
}

func TestEmitDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	// Silence the dry-run print.
	saved := os.Stdout
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devNull
	defer func() {
		os.Stdout = saved
		devNull.Close()
	}()

	cfg := editConfig{DryRun: true}
	require.NoError(t, cfg.emit(path, "old", "new"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestReadInputFileMissing(t *testing.T) {
	_, err := readInputFile(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}
