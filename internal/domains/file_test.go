package domains

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "domains.json")
	list := New("domains", DefaultDomains)

	require.NoError(t, WriteFile(path, list))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "domains", got.Name())
	assert.Equal(t, DefaultDomains, got.All())
}

func TestReadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1,2"), 0o600))
	_, err = ReadFile(bad)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	noName := filepath.Join(dir, "noname.json")
	require.NoError(t, os.WriteFile(noName, []byte(`{"domains":["a.com"]}`), 0o600))
	_, err = ReadFile(noName)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []string{"a.com", "b.com"}))
	assert.Equal(t, "a.com\nb.com\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteText(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Describe(&buf, "web", []string{"a.com"}))
	assert.Equal(t, "Domain list \"web\" contains the following domains:\n* \"a.com\"\n", buf.String())

	buf.Reset()
	require.NoError(t, Describe(&buf, "web", nil))
	assert.Contains(t, buf.String(), "is empty")
}
