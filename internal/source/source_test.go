package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

type failingPicker struct{}

func (failingPicker) Pick() (string, bool, error) {
	return "", false, errors.New("dialog unavailable")
}

func TestResolve_BuiltinSample(t *testing.T) {
	res := Resolve(BuiltinSample, nil)

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Empty(t, res.Notice)
}

func TestResolve_ExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte("Alice,4.5\nBob,3.9\n"), 0644))

	res := Resolve(ExternalFile, PathPicker(path))

	assert.Empty(t, res.Notice)
	assert.Equal(t, []roster.Student{
		{Name: "Alice", GPA: 4.5},
		{Name: "Bob", GPA: 3.9},
	}, res.Students)
}

func TestResolve_CancelledFallsBack(t *testing.T) {
	res := Resolve(ExternalFile, PathPicker(""))

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Contains(t, res.Notice, "Falling back to built-in sample")
}

func TestResolve_EmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	res := Resolve(ExternalFile, PathPicker(path))

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Contains(t, res.Notice, "No rows loaded")
}

func TestResolve_AllRowsInvalidFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,GPA\nX,notanumber\n"), 0644))

	res := Resolve(ExternalFile, PathPicker(path))

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Contains(t, res.Notice, "No rows loaded")
}

func TestResolve_MissingFileFallsBack(t *testing.T) {
	res := Resolve(ExternalFile, PathPicker(filepath.Join(t.TempDir(), "nope.csv")))

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Contains(t, res.Notice, "Failed to read file")
}

func TestResolve_PickerErrorFallsBack(t *testing.T) {
	res := Resolve(ExternalFile, failingPicker{})

	assert.Equal(t, roster.Sample(), res.Students)
	assert.Contains(t, res.Notice, "Failed to read file")
}
