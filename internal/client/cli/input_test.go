package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  example.com  \n"))

	v, err := GetSimpleText(reader, "Enter domain", &out)
	require.NoError(t, err)
	assert.Equal(t, "example.com", v)
	assert.Contains(t, out.String(), "Enter domain")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("alice"))

	v, err := GetSimpleText(reader, "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", v)
}

func TestGetSimpleText_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Enter username", &out)
	assert.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("Str0ngPass"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "Str0ngPass", pw)
	assert.Contains(t, out.String(), "Enter password")
}
