package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"day-planner/internal/logging"
)

// maxLineBytes bounds one session line. Longer lines are skipped with an error.
const maxLineBytes = 1 << 20

var errLineTooLong = fmt.Errorf("line longer than %d bytes", maxLineBytes)

// Session reads command lines from in and runs each one through the App
// until input ends or the user types exit.
type Session struct {
	app *App
	in  io.Reader
}

// NewSession creates a session reading from in
func NewSession(app *App, in io.Reader) *Session {
	return &Session{app: app, in: in}
}

// Run processes lines until EOF, exit/quit or ctx is done. A failing command
// is reported and the session continues.
func (s *Session) Run(ctx context.Context) error {
	interactive := logging.IsTerminal(s.in)
	reader := bufio.NewReader(s.in)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			s.app.printf("%s", s.app.config.Display.Prompt)
		}
		raw, err := readLine(reader)
		if err == io.EOF {
			break
		}
		lineNo++
		if err == errLineTooLong {
			s.app.logger.Warn("line too long", "line", lineNo, "limit", maxLineBytes)
			s.app.printf("Error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			s.app.logger.Warn("unparseable line", "line", lineNo, "error", err)
			s.app.printf("Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "exit", "quit":
			s.app.logger.Debug("session ended", "lines", lineNo)
			return nil
		}

		s.app.logger.Debug("running command", "line", lineNo, "command", args[0])
		if err := s.app.Run(ctx, args); err != nil {
			s.app.logger.Debug("command failed", "line", lineNo, "command", args[0], "error", err)
			s.app.printf("Error: %s\n", s.app.errors.Message(err))
		}
	}

	if interactive {
		s.app.printf("\n")
	}
	return nil
}

// readLine returns the next line without its terminator. A line over
// maxLineBytes is consumed up to its newline and reported as errLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var line []byte
	tooLong := false
	read := false

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				break
			}
			return "", err
		}
		read = true

		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}
