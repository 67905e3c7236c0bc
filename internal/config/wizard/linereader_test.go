package wizard

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_OneLinePerRead(t *testing.T) {
	t.Parallel()

	l := newLineReader(strings.NewReader("first\nsecond\nthird"))
	buf := make([]byte, 64)

	for _, want := range []string{"first\n", "second\n", "third\n"} {
		n, err := l.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, want, string(buf[:n]))
		assert.False(t, l.exhausted())
	}

	n, err := l.Read(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, l.exhausted())
}

func TestLineReader_ShortBuffer(t *testing.T) {
	t.Parallel()

	l := newLineReader(strings.NewReader("myApp\n"))
	buf := make([]byte, 2)

	var got strings.Builder
	for {
		n, err := l.Read(buf)
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		got.Write(buf[:n])
	}
	assert.Equal(t, "myApp\n", got.String())
}

func TestLineReader_ScannersDoNotReadAhead(t *testing.T) {
	t.Parallel()

	l := newLineReader(strings.NewReader("1\n2\n"))

	for _, want := range []string{"1", "2"} {
		s := bufio.NewScanner(l)
		require.True(t, s.Scan())
		assert.Equal(t, want, s.Text())
	}
	assert.False(t, l.exhausted())
	assert.False(t, bufio.NewScanner(l).Scan())
	assert.True(t, l.exhausted())
}
