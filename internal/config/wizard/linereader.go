package wizard

import (
	"bufio"
	"io"
	"strings"
)

// lineReader hands out at most one input line per Read.
//
// huh's accessible prompts scan their input with a fresh bufio.Scanner per
// question, and a scanner reading from a pipe would swallow the answers of
// the following questions. A final line without a newline gets one, so a
// Read returning io.EOF always means a prompt ran out of input.
type lineReader struct {
	r       *bufio.Reader
	pending string
	eof     bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (l *lineReader) Read(p []byte) (int, error) {
	if l.pending == "" {
		if l.eof {
			return 0, io.EOF
		}
		line, err := l.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, err
		}
		if line == "" {
			l.eof = true
			return 0, io.EOF
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		l.pending = line
	}

	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

// exhausted reports whether a Read has returned io.EOF.
func (l *lineReader) exhausted() bool {
	return l.eof && l.pending == ""
}
