package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Run_Sample_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")

	input := "6\n" +
		"001110110101010111111111\n" +
		"access 4\n" +
		"rank 0 10\n" +
		"select 1 14\n" +
		"rank 1 10\n" +
		"select 0 3\n" +
		"access 5\n"

	require.NoError(t, os.WriteFile(inPath, []byte(input), 0o600))

	var stdout, stderr bytes.Buffer

	code := Run([]string{"bv", inPath, outPath}, nil, &stdout, &stderr)
	require.Equal(t, exitOK, code)
	require.Empty(t, stderr.String())
	require.Contains(t, stdout.String(), "RESULT name=succinct-bv")

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "1\n4\n20\n6\n5\n0\n", string(got))
}

func Test_Run_Wrong_Argc_Is_Usage_Error(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := Run([]string{"bv", "only-one-arg"}, nil, &stdout, &stderr)
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr.String(), "usage:")
}

func Test_Run_Missing_Input_File_Is_Fatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	code := Run([]string{"bv", filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.txt")}, nil, &stdout, &stderr)
	require.Equal(t, exitFatal, code)
	require.Contains(t, stderr.String(), "error:")
}

func Test_Run_Select_None_Emits_Sentinel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")

	input := "1\n111\nselect 0 1\n"
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0o600))

	var stdout, stderr bytes.Buffer

	code := Run([]string{"bv", inPath, outPath}, nil, &stdout, &stderr)
	require.Equal(t, exitOK, code)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "18446744073709551615\n", string(got))
}

func Test_Run_Out_Of_Range_Access_Is_Fatal_Not_A_Crash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")

	input := "1\n111\naccess 10\n"
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0o600))

	var stdout, stderr bytes.Buffer

	code := Run([]string{"bv", inPath, outPath}, nil, &stdout, &stderr)
	require.Equal(t, exitFatal, code)
	require.True(t, strings.Contains(stderr.String(), "error:"))
}
