package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL",
			url:  "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with node-id parameter",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Makis-s-file?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www subdomain",
			url:  "https://figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with query right after the key",
			url:  "https://www.figma.com/file/ABC123XYZ?node-id=1-2",
			want: "ABC123XYZ",
		},
		{
			name: "bare file key",
			url:  "aB1cD2eF3gH4iJ5kL6",
			want: "aB1cD2eF3gH4iJ5kL6",
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const sampleFile = `{
  "name": "Tokens",
  "version": "42",
  "document": {
    "id": "0:0",
    "name": "Document",
    "type": "DOCUMENT",
    "children": [
      {
        "id": "0:1",
        "name": "Page 1",
        "type": "CANVAS",
        "children": []
      }
    ]
  }
}`

func TestGetFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/ABC123", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
		w.Write([]byte(sampleFile))
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL))
	resp, err := c.GetFile(context.Background(), "ABC123")
	require.NoError(t, err)

	assert.Equal(t, "Tokens", resp.Name)
	pages, ok := resp.Pages()
	require.True(t, ok)
	require.Len(t, pages, 1)
	assert.Equal(t, "Page 1", pages[0].Name)
}

func TestGetFileRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "try later", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(sampleFile))
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL), WithRetry(3, time.Millisecond))
	_, err := c.GetFile(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetFileDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "invalid token", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL), WithRetry(3, time.Millisecond))
	_, err := c.GetFile(context.Background(), "ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestPagesMissingDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no document", body: `{"name":"x"}`},
		{name: "document without children", body: `{"document":{"id":"0:0","type":"DOCUMENT"}}`},
		{name: "null children", body: `{"document":{"id":"0:0","children":null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(tt.body))
			require.NoError(t, err)
			_, ok := resp.Pages()
			assert.False(t, ok)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	resp, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42", resp.Version)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{"))
	assert.Error(t, err)
}
