package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
)

// 1x1 transparent PNG.
var pngBytes, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func opener(b []byte) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(b)), nil }
}

func TestEncode_PNG(t *testing.T) {
	got, err := Encode(bytes.NewReader(pngBytes), 0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestEncode_RejectsNonImage(t *testing.T) {
	_, err := Encode(strings.NewReader("just some text"), 0)
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestEncode_TooLarge(t *testing.T) {
	_, err := Encode(bytes.NewReader(pngBytes), int64(len(pngBytes)-1))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := Encode(bytes.NewReader(pngBytes), int64(len(pngBytes))); err != nil {
		t.Fatalf("exact size should pass: %v", err)
	}
}

func TestEncodeAll_OneResultPerFile(t *testing.T) {
	files := []File{
		{Field: "logo", Name: "logo.png", Open: opener(pngBytes)},
		{Field: "screenshots", Name: "a.png", Open: opener(pngBytes)},
		{Field: "screenshots", Name: "b.txt", Open: opener([]byte("hello"))},
		{Field: "screenshots", Name: "broken", Open: func() (io.ReadCloser, error) { return nil, errors.New("gone") }},
	}
	seen := map[string]Result{}
	for r := range EncodeAll(context.Background(), files, 0) {
		if _, dup := seen[r.Name]; dup {
			t.Fatalf("duplicate result for %s", r.Name)
		}
		seen[r.Name] = r
	}
	if len(seen) != len(files) {
		t.Fatalf("expected %d results, got %d", len(files), len(seen))
	}
	if seen["logo.png"].Err != nil || !strings.HasPrefix(seen["logo.png"].Payload, "data:image/png;base64,") {
		t.Fatalf("logo result: %+v", seen["logo.png"])
	}
	if seen["a.png"].Field != "screenshots" {
		t.Fatalf("field not carried: %+v", seen["a.png"])
	}
	if !errors.Is(seen["b.txt"].Err, ErrNotImage) {
		t.Fatalf("text file should fail with ErrNotImage: %v", seen["b.txt"].Err)
	}
	if seen["broken"].Err == nil || seen["broken"].Payload != "" {
		t.Fatalf("open failure should be reported: %+v", seen["broken"])
	}
}

func TestEncodeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := []File{{Field: "logo", Name: "x", Open: opener(pngBytes)}}
	n := 0
	for r := range EncodeAll(ctx, files, 0) {
		n++
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", r.Err)
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly one result, got %d", n)
	}
}

func TestEncodeAll_Empty(t *testing.T) {
	for range EncodeAll(context.Background(), nil, 0) {
		t.Fatalf("no results expected")
	}
}

func TestResolveLogo(t *testing.T) {
	cases := []struct {
		in   string
		want Logo
	}{
		{"data:image/png;base64,AAAA", Logo{LogoImage, "data:image/png;base64,AAAA"}},
		{"CodePilotIcon", Logo{LogoIcon, "CodePilotIcon"}},
		{"FirewallIcon", Logo{LogoIcon, "FirewallIcon"}},
		{"NopeIcon", Logo{LogoIcon, DefaultIcon}},
		{"", Logo{LogoIcon, DefaultIcon}},
		{"data:text/plain,hi", Logo{LogoIcon, DefaultIcon}},
	}
	for _, tc := range cases {
		if got := ResolveLogo(tc.in); got != tc.want {
			t.Fatalf("ResolveLogo(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
