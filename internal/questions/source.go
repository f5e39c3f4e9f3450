package questions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// Source opens question-set bodies by absolute path ("/python.json").
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// HTTPSource fetches sets from a static file host.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns an HTTPSource with a bounded client timeout.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPSource) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+p, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp.Body, nil
}

// FSSource reads sets from a filesystem, either a directory or the
// embedded samples.
type FSSource struct {
	FS fs.FS
}

// DirSource serves sets from a directory on disk.
func DirSource(dir string) *FSSource {
	return &FSSource{FS: os.DirFS(dir)}
}

// EmbeddedSource serves the sample sets compiled into the binary.
func EmbeddedSource() *FSSource {
	return &FSSource{FS: Embedded()}
}

func (s *FSSource) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if !fs.ValidPath(name) {
		return nil, &StatusError{StatusCode: http.StatusBadRequest, Status: "400 Bad Request"}
	}
	f, err := s.FS.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewSource picks a Source for a --source value: an http(s) URL, a
// directory, or "" for the embedded sets.
func NewSource(location string) Source {
	switch {
	case location == "":
		return EmbeddedSource()
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location)
	default:
		return DirSource(location)
	}
}

// Topics lists the set names (file names without ".json") at the root of fsys.
func Topics(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read sets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
