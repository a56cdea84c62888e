package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hola mundo  \n"), "Escribe algo", &out)
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", got)
	assert.Contains(t, out.String(), "Escribe algo")
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer

	// partial line before EOF is still returned
	got, err := GetSimpleText(rdr("sin salto"), "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "sin salto", got)

	// bare EOF is an error
	_, err = GetSimpleText(rdr(""), "Prompt", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("línea uno\nlínea dos\n\n"), "Cuéntame", &out)
	require.NoError(t, err)
	assert.Equal(t, "línea uno\nlínea dos", got)
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	_, err := GetPassword(&out, "Contraseña")
	require.Error(t, err)
	assert.Contains(t, out.String(), "Contraseña")
}

func TestGetPassword_Stubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secreto"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Contraseña")
	require.NoError(t, err)
	assert.Equal(t, "secreto", pw)
}
