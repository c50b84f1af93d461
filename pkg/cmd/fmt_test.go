package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestFmtCommand_RequiresPath(t *testing.T) {
	_, err := runCommand(t, fmtCmd(config.Default()), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	sqlFile := writeFile(t, t.TempDir(), "test.sql", "select a,b from t where a>1")

	output, err := runCommand(t, fmtCmd(config.Default()), "", sqlFile)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    a,\n    b\nFROM t\nWHERE a > 1;\n", output)
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	unformatted := "delete from t where a in (1,2)"
	sqlFile := writeFile(t, t.TempDir(), "test.sql", unformatted)

	output, err := runCommand(t, fmtCmd(config.Default()), "", "-w", sqlFile)
	require.NoError(t, err)
	require.Empty(t, output)

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM t\nWHERE a IN (1, 2);\n", string(content))
}

func TestFmtCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.sql", "drop table b")
	writeFile(t, tmpDir, "nested/a.SQL", "drop table a")
	writeFile(t, tmpDir, "notes.txt", "not sql")

	output, err := runCommand(t, fmtCmd(config.Default()), "", tmpDir)
	require.NoError(t, err)
	require.Equal(t, "DROP TABLE b;\nDROP TABLE a;\n", output)
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	_, err := runCommand(t, fmtCmd(config.Default()), "", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no SQL files found in directory")
}

func TestFmtCommand_InvalidSQL(t *testing.T) {
	sqlFile := writeFile(t, t.TempDir(), "bad.sql", "SELECT FROM t")

	_, err := runCommand(t, fmtCmd(config.Default()), "", "-w", sqlFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse SQL in file")

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "SELECT FROM t", string(content), "file left untouched")
}

func TestFmtCommand_MissingPath(t *testing.T) {
	_, err := runCommand(t, fmtCmd(config.Default()), "", filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}
