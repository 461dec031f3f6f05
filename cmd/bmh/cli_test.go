package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates name → content files in a temp dir and returns their paths.
func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		paths[name] = path
	}
	return paths
}

func runBMH(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--color", "never"}, args...)
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunFiles(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "HAYSTACKABCNEEDLE",
		"b.txt": "XXXXXX",
		"c.txt": "AB",
	})

	code, stdout, stderr := runBMH(t, "", "ABC", paths["a.txt"], paths["b.txt"], paths["c.txt"])
	assert.Equal(t, 0, code)
	assert.Equal(t, paths["a.txt"]+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunFilesWithoutMatch(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "HAYSTACKABCNEEDLE",
		"b.txt": "XXXXXX",
		"c.txt": "AB",
	})

	code, stdout, _ := runBMH(t, "", "-L", "ABC", paths["a.txt"], paths["b.txt"], paths["c.txt"])
	assert.Equal(t, 0, code)
	assert.Equal(t, paths["b.txt"]+"\n"+paths["c.txt"]+"\n", stdout)
}

func TestRunPreservesInputOrder(t *testing.T) {
	files := map[string]string{}
	for _, name := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		files[name] = "..needle.."
	}
	paths := writeFiles(t, files)

	args := []string{"-j", "3", "needle"}
	var want strings.Builder
	for _, name := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		args = append(args, paths[name])
		want.WriteString(paths[name] + "\n")
	}

	code, stdout, _ := runBMH(t, "", args...)
	assert.Equal(t, 0, code)
	assert.Equal(t, want.String(), stdout)
}

func TestRunNoMatch(t *testing.T) {
	paths := writeFiles(t, map[string]string{"b.txt": "XXXXXX"})

	code, stdout, stderr := runBMH(t, "", "ABC", paths["b.txt"])
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunStdin(t *testing.T) {
	code, stdout, _ := runBMH(t, "AABAACAADAABAABA", "AABA")
	assert.Equal(t, 0, code)
	assert.Equal(t, "-\n", stdout)

	code, stdout, _ = runBMH(t, "", "A", "-")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRunQuiet(t *testing.T) {
	code, stdout, _ := runBMH(t, "a needle", "-q", "needle")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)

	code, stdout, _ = runBMH(t, "hay", "-q", "needle")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"empty_pattern", []string{""}, "empty pattern"},
		{"missing_file", []string{"x", filepath.Join(t.TempDir(), "missing")}, "reading"},
		{"bad_jobs", []string{"-j", "0", "x"}, "--jobs"},
		{"no_args", nil, "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runBMH(t, "", tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestRunBadColorMode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--color", "sometimes", "x"}, strings.NewReader("x"), &out, &errOut)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "invalid --color")
}

func TestRunVerboseLogs(t *testing.T) {
	code, _, stderr := runBMH(t, "needle", "-v", "needle")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "compiled pattern")
	assert.Contains(t, stderr, "searched input")
}
