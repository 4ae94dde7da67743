package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portal_servicos/internal/usecase/interfaces"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"report.pdf":            "report.pdf",
		"../../etc/passwd":      "passwd",
		"C:\\Users\\ana\\a.png": "a.png",
		"":                      "file",
	}
	for in, want := range cases {
		got := objectKey(now, in)
		if !strings.HasPrefix(got, "2024/03/") || !strings.HasSuffix(got, "_"+want) {
			t.Fatalf("objectKey(%q) = %q, want suffix %q", in, got, want)
		}
	}
}

func TestMinioBlobStore_GetRejectsForeignURL(t *testing.T) {
	s := NewMinioBlobStore(nil, "attachments", "http://localhost:9000/")

	for _, url := range []string{
		"http://elsewhere/attachments/a.pdf",
		"http://localhost:9000/other/a.pdf",
		"http://localhost:9000/attachments/",
	} {
		if _, err := s.Get(context.Background(), url); !errors.Is(err, ErrForeignURL) {
			t.Fatalf("expected ErrForeignURL for %s, got %v", url, err)
		}
	}
}

func TestMemoryBlobStore_RoundTrip(t *testing.T) {
	s := NewMemoryBlobStore()
	ctx := context.Background()

	url, err := s.Put(ctx, interfaces.BlobFile{Name: "a.txt", Reader: strings.NewReader("hello")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Get(ctx, url)
	if err != nil || string(got) != "hello" {
		t.Fatalf("expected hello, got %q %v", got, err)
	}
	if _, err := s.Get(ctx, "mem://attachments/99/x"); !errors.Is(err, ErrForeignURL) {
		t.Fatalf("expected ErrForeignURL, got %v", err)
	}
}
