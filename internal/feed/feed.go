package feed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nxadm/tail"
)

// Config controls how a message file is followed.
type Config struct {
	// Poll uses stat polling instead of inotify.
	Poll bool
	// FromEnd skips lines already in the file.
	FromEnd bool
}

// Follow streams the non-blank lines of path as replacement messages.
// The channel closes when ctx is done or the file can no longer be read.
func Follow(ctx context.Context, path string, cfg Config) (<-chan string, error) {
	if path == "" {
		return nil, fmt.Errorf("no message file provided")
	}

	tcfg := tail.Config{Follow: true, ReOpen: true, Logger: tail.DiscardingLogger, MustExist: true, Poll: cfg.Poll}
	if cfg.FromEnd {
		tcfg.Location = &tail.SeekInfo{Whence: io.SeekEnd}
	}
	t, err := tail.TailFile(path, tcfg)
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer t.Cleanup()
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-t.Lines:
				if !ok {
					return
				}
				if line.Err != nil {
					continue
				}
				msg := Clean(line.Text)
				if msg == "" {
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Clean trims whitespace and drops control characters that would break the glyph layout.
func Clean(line string) string {
	line = strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, line)
	return strings.TrimSpace(line)
}

// Latest keeps only the newest message when the consumer is slower than the
// file. It forwards on a buffered channel of size one.
func Latest(ctx context.Context, in <-chan string) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case <-out:
				default:
				}
				out <- msg
			}
		}
	}()
	return out
}
