package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader("  add Anna 0501234567  \n"), &out)

	input, err := stdio.ReadInput("Enter a command: ")
	require.NoError(t, err)
	assert.Equal(t, "add Anna 0501234567", input)
	assert.Equal(t, "Enter a command: ", out.String())
}

func TestReadInputEOF(t *testing.T) {
	stdio := NewStdioFrom(strings.NewReader(""), io.Discard)

	_, err := stdio.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadInputLastLineWithoutNewline(t *testing.T) {
	stdio := NewStdioFrom(strings.NewReader("exit"), io.Discard)

	// Последняя строка без \n все равно читается
	input, err := stdio.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "exit", input)
}

func TestPrintHelpers(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader(""), &out)

	stdio.Println("Good bye!")
	stdio.Printf("hello %s", "world")
	assert.Equal(t, "Good bye!\nhello world", out.String())
}

func TestReadPasswordFallsBackToPlainRead(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader("secret\n"), &out)

	// Не терминал, читаем обычной строкой
	password, err := stdio.ReadPassword("Passphrase: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", password)
	assert.Equal(t, "Passphrase: ", out.String())
}
