// Package media converts uploaded image files into inline data-URL payloads
// and resolves stored logo values for display.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrNotImage is returned when the sniffed content type is not image/*.
	ErrNotImage = errors.New("file is not an image")
	// ErrTooLarge is returned when a file exceeds the configured size limit.
	ErrTooLarge = errors.New("file exceeds upload limit")
)

// DefaultMaxBytes caps a single file when no explicit limit is given.
const DefaultMaxBytes int64 = 5 << 20

// Encode reads r fully and returns "data:<mime>;base64,<payload>". The MIME
// type is sniffed from the content; the client-declared type is ignored.
func Encode(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(b)) > maxBytes {
		return "", ErrTooLarge
	}
	mt := mimetype.Detect(b)
	mime := mt.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mime)
	}
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(b)))
	sb.WriteString("data:")
	sb.WriteString(mime)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(b))
	return sb.String(), nil
}

// File is one upload awaiting encoding.
type File struct {
	Field string
	Name  string
	Open  func() (io.ReadCloser, error)
}

// Result is the outcome for one File. Exactly one of Payload and Err is set.
type Result struct {
	Field   string
	Name    string
	Payload string
	Err     error
}

// EncodeAll encodes every file on its own goroutine and delivers exactly one
// Result per file on the returned channel, in completion order. The channel is
// closed once all files are done. Files not yet started when ctx is cancelled
// report ctx.Err().
func EncodeAll(ctx context.Context, files []File, maxBytes int64) <-chan Result {
	out := make(chan Result, len(files))
	var wg sync.WaitGroup
	wg.Add(len(files))
	for _, f := range files {
		go func(f File) {
			defer wg.Done()
			res := Result{Field: f.Field, Name: f.Name}
			if err := ctx.Err(); err != nil {
				res.Err = err
				out <- res
				return
			}
			res.Payload, res.Err = encodeFile(f, maxBytes)
			if res.Err != nil {
				res.Err = fmt.Errorf("%s %q: %w", f.Field, f.Name, res.Err)
			}
			out <- res
		}(f)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func encodeFile(f File, maxBytes int64) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer rc.Close()
	return Encode(rc, maxBytes)
}
