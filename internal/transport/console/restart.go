package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// RestartPrompt reads the answer to the play-again question.
type RestartPrompt struct {
	lines *LineReader
	w     io.Writer
}

func NewRestartPrompt(lines *LineReader, w io.Writer) *RestartPrompt {
	return &RestartPrompt{lines: lines, w: w}
}

// ConfirmRestart keeps asking until the answer is a yes or a no.
func (r *RestartPrompt) ConfirmRestart(ctx context.Context) (bool, error) {
	for {
		line, err := r.lines.ReadLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "1", "yes", "Yes", "Y", "y":
			return true, nil
		case "0", "no", "No", "N", "n":
			return false, nil
		default:
			fmt.Fprintln(r.w, "Invalid choice. Press (Y/1 or N/0)")
		}
	}
}
