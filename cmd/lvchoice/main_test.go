package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/rawio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeVec writes a rank-1 input file into dir and returns its path.
func writeVec(t *testing.T, dir, name string, xs ...float64) string {
	t.Helper()
	f, err := field.FromVector(xs)
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, rawio.WriteFile(p, f))

	return p
}

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// readOut reads an output vector.
func readOut(t *testing.T, path string) []float64 {
	t.Helper()
	f, err := rawio.ReadFlatFile(path)
	require.NoError(t, err)

	return f.Raw()
}

func TestParsePairs(t *testing.T) {
	m, err := parsePairs("alt", []string{"auto=a.bin", "transit=dir/t=1.bin"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"auto": "a.bin", "transit": "dir/t=1.bin"}, m)

	_, err = parsePairs("alt", []string{"auto"})
	assert.Error(t, err)
	_, err = parsePairs("alt", []string{"=a.bin"})
	assert.Error(t, err)
	_, err = parsePairs("alt", []string{"a=x", "a=y"})
	assert.Error(t, err)

	for _, bad := range []string{"../x", "sub/x", `sub\x`, "..", "a..b"} {
		_, err = parsePairs("alt", []string{bad + "=a.bin"})
		assert.Error(t, err, "name %q must not leave the output directory", bad)
	}
}

func TestMNLCommand_RejectsEscapingName(t *testing.T) {
	dir := t.TempDir()
	u := writeVec(t, dir, "u.bin", 1)
	out := filepath.Join(dir, "out")

	_, err := runCLI(t, "mnl", "--rank", "1", "--alt", "../escaped="+u, "--out", out)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "escaped.bin"))

	assert.Error(t, writeAll(out, map[string]*field.Field{"../x": nil}, ""))
}

func TestMNLCommand(t *testing.T) {
	dir := t.TempDir()
	auto := writeVec(t, dir, "auto_u.bin", 1, 0)
	transit := writeVec(t, dir, "transit_u.bin", 0, 0)
	out := filepath.Join(dir, "out")
	ls := filepath.Join(dir, "out", "logsum.bin")

	stdout, err := runCLI(t, "mnl", "--rank", "1", "--alt", "auto="+auto, "--alt", "transit="+transit, "--out", out, "--logsum", ls)
	require.NoError(t, err)
	assert.Contains(t, stdout, "auto")
	assert.Contains(t, stdout, "transit")

	pa := readOut(t, filepath.Join(out, "auto.bin"))
	pt := readOut(t, filepath.Join(out, "transit.bin"))
	assert.InDelta(t, 0.7311, pa[0], 1e-4)
	assert.InDelta(t, 0.5, pa[1], 1e-12)
	assert.InDelta(t, 1.0, pa[0]+pt[0], 1e-12)

	l := readOut(t, ls)
	assert.Len(t, l, 2)
}

func TestMNLCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeVec(t, dir, "a.bin", 1, 2)
	b := writeVec(t, dir, "b.bin", 1, 2, 3)

	_, err := runCLI(t, "mnl", "--rank", "1", "--alt", "a="+a, "--alt", "b="+b, "--out", dir)
	assert.Error(t, err, "shape mismatch must fail")

	_, err = runCLI(t, "mnl", "--rank", "2", "--alt", "b="+b, "--out", dir)
	assert.ErrorIs(t, err, rawio.ErrSizeMismatch, "3 values is not a square matrix")

	_, err = runCLI(t, "mnl", "--out", dir)
	assert.Error(t, err, "--alt is required")
}

func TestPivotCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	_, err := runCLI(t, "pivot", "--rank", "1",
		"--base", "auto="+writeVec(t, dir, "ba.bin", 1), "--base", "transit="+writeVec(t, dir, "bt.bin", 0),
		"--updated", "auto="+writeVec(t, dir, "ua.bin", 1), "--updated", "transit="+writeVec(t, dir, "ut.bin", 0.5),
		"--prob", "auto="+writeVec(t, dir, "pa.bin", 0.6), "--prob", "transit="+writeVec(t, dir, "pt.bin", 0.4),
		"--out", out)
	require.NoError(t, err)

	assert.InDelta(t, 0.4764, readOut(t, filepath.Join(out, "auto.bin"))[0], 1e-4)
	assert.InDelta(t, 0.5236, readOut(t, filepath.Join(out, "transit.bin"))[0], 1e-4)
}

func TestNestedCommand(t *testing.T) {
	dir := t.TempDir()
	writeVec(t, dir, "au.bin", 1.0)
	writeVec(t, dir, "wb.bin", 0.5)
	writeVec(t, dir, "wx.bin", 0.2)
	run := `
shape: {rank: 1, n: 1}
output_dir: out
logsum: out/root_logsum.bin
workers: 2
tree:
  - {level: 0, code: ROOT, scale: 1.0, children: [AU, TR]}
  - {level: 1, code: TR, scale: 0.7, children: [WB, WX]}
leaves: {AU: au.bin, WB: wb.bin, WX: wx.bin}
`
	cfg := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(run), 0o644))

	stdout, err := runCLI(t, "nested", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ROOT")

	out := filepath.Join(dir, "out")
	assert.InDelta(t, 0.5372, readOut(t, filepath.Join(out, "AU.bin"))[0], 1e-4)
	assert.InDelta(t, 0.4629, readOut(t, filepath.Join(out, "TR.bin"))[0], 1e-4)
	assert.InDelta(t, 0.2802, readOut(t, filepath.Join(out, "WB.bin"))[0], 1e-4)
	assert.InDelta(t, 0.1826, readOut(t, filepath.Join(out, "WX.bin"))[0], 1e-4)
	assert.InDelta(t, 1.6215, readOut(t, filepath.Join(out, "root_logsum.bin"))[0], 1e-4)
	assert.NoFileExists(t, filepath.Join(out, "ROOT.bin"))
}

func TestNestedCommand_MissingLeafFile(t *testing.T) {
	dir := t.TempDir()
	run := `
shape: {rank: 1, n: 1}
tree: [{level: 0, code: ROOT, scale: 1.0, children: [A, B]}]
leaves: {A: a.bin, B: b.bin}
`
	cfg := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(run), 0o644))
	writeVec(t, dir, "a.bin", 0)

	_, err := runCLI(t, "nested", "--config", cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
