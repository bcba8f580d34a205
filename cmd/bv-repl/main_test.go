package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseArg(t *testing.T) {
	t.Parallel()

	v, err := parseArg([]string{"42"})
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = parseArg([]string{"not-a-number"})
	require.Error(t, err)

	_, err = parseArg([]string{})
	require.Error(t, err)

	_, err = parseArg([]string{"1", "2"})
	require.Error(t, err)
}

func Test_OpenMmap_Reads_File_Contents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "q.txt")
	want := "1\n101\naccess 0\n"
	require.NoError(t, os.WriteFile(path, []byte(want), 0o600))

	mf, err := openMmap(path)
	require.NoError(t, err)
	defer mf.Close()

	require.Equal(t, want, string(mf.data))
}

func Test_OpenMmap_Rejects_Empty_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := openMmap(path)
	require.Error(t, err)
}

func Test_OpenMmap_Rejects_Missing_File(t *testing.T) {
	t.Parallel()

	_, err := openMmap(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
