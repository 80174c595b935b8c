package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineReader turns a blocking io.Reader into lines that can be awaited with a
// context. The reader goroutine starts on the first ReadLine.
type LineReader struct {
	src   io.Reader
	lines chan string
	err   error
	once  sync.Once
}

func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{src: src, lines: make(chan string)}
}

func (lr *LineReader) start() {
	go func() {
		scanner := bufio.NewScanner(lr.src)
		for scanner.Scan() {
			lr.lines <- strings.TrimRight(scanner.Text(), "\r")
		}
		lr.err = scanner.Err()
		if lr.err == nil {
			lr.err = io.EOF
		}
		close(lr.lines)
	}()
}

// ReadLine waits for the next line. It returns io.EOF once the input is
// exhausted and ctx.Err() when ctx is done first.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	lr.once.Do(lr.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", lr.err
		}
		return line, nil
	}
}
