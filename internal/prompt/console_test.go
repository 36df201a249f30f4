package prompt

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("4\r\n12\nlast"))

	line, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "4", line)

	line, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "12", line)

	line, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = readLine(r)
	assert.ErrorIs(t, err, io.EOF)
}
