package favicon

import (
	"context"
	"testing"

	"github.com/Aakash17x08/linkhive/internal/logger"
)

func testLogger() logger.Logger {
	return logger.New("error", false)
}

func TestIconURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{
			name:   "https with path",
			rawURL: "https://github.com/golang/go",
			want:   "https://www.google.com/s2/favicons?domain=github.com&sz=64",
		},
		{
			name:   "port stripped",
			rawURL: "http://localhost:3000/app",
			want:   "https://www.google.com/s2/favicons?domain=localhost&sz=64",
		},
		{
			name:    "no host",
			rawURL:  "mailto:me@example.com",
			wantErr: true,
		},
		{
			name:    "garbage",
			rawURL:  "://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IconURL(tt.rawURL)
			if tt.wantErr {
				if err == nil {
					t.Errorf("IconURL(%q) = %q, want error", tt.rawURL, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("IconURL(%q) error: %v", tt.rawURL, err)
			}
			if got != tt.want {
				t.Errorf("IconURL(%q) = %q, want %q", tt.rawURL, got, tt.want)
			}
		})
	}
}

type recordingDecorator struct {
	calls chan string
}

func (r *recordingDecorator) SetLinkFavicon(_ context.Context, _, linkID, _ string) error {
	r.calls <- linkID
	return nil
}

func TestDecorateSkipsUnresolvableURL(t *testing.T) {
	dec := &recordingDecorator{calls: make(chan string, 1)}
	r := New(dec, testLogger(), 0)

	// No host to derive a domain from: Decorate must bail before spawning.
	r.Decorate("s1", "l1", "mailto:me@example.com")

	select {
	case id := <-dec.calls:
		t.Errorf("Decorate() decorated link %s, want no call", id)
	default:
	}
}
