package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is where puzzle inputs are fetched from.
const DefaultBaseURL = "https://adventofcode.com"

// DefaultMaxFetches is the number of downloads Inputs runs at once when
// MaxFetches is not set.
const DefaultMaxFetches = 4

// Inputs loads puzzle inputs. Inputs are cached on disk as
// <Dir>/<year>/<day>.input and fetched with the session cookie on a miss.
// It is safe for concurrent use: concurrent loads of one day share a single
// download. An Inputs must not be copied after first use.
type Inputs struct {
	Dir     string
	BaseURL string // defaults to DefaultBaseURL
	Client  *http.Client

	// Session returns the adventofcode.com session token. If nil or it
	// returns "", missing inputs are not fetched.
	Session func() (string, error)

	// MaxFetches bounds concurrent downloads. Zero means DefaultMaxFetches.
	MaxFetches int

	flights singleflight.Group // keyed by cache path
	semOnce sync.Once
	sem     chan struct{}
}

// Path returns the cache path of the input for id.
func (in *Inputs) Path(id ID) string {
	return filepath.Join(in.Dir, fmt.Sprint(id.Year), fmt.Sprintf("%d.input", id.Day))
}

// Load returns the input for id, fetching and caching it if needed. Both
// parts of a day share one input.
func (in *Inputs) Load(ctx context.Context, id ID) (string, error) {
	name := in.Path(id)
	b, err := os.ReadFile(name)
	if err == nil {
		return string(b), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	session, err := in.session()
	if err != nil {
		return "", err
	}
	if session == "" {
		return "", fmt.Errorf("%w: %s does not exist and no session is configured", ErrNoInput, name)
	}
	v, err, _ := in.flights.Do(name, func() (any, error) {
		// A flight that just finished may have filled the cache.
		if b, err := os.ReadFile(name); err == nil {
			return b, nil
		}
		if err := in.acquire(ctx); err != nil {
			return nil, err
		}
		defer in.release()
		url := fmt.Sprintf("%s/%d/day/%d/input", Or(in.BaseURL, DefaultBaseURL), id.Year, id.Day)
		b, err := in.fetch(ctx, url, session)
		if err != nil {
			return nil, err
		}
		if err := writeCache(name, b); err != nil {
			return nil, err
		}
		return b, nil
	})
	if err != nil {
		return "", err
	}
	return string(v.([]byte)), nil
}

func (in *Inputs) acquire(ctx context.Context) error {
	in.semOnce.Do(func() {
		in.sem = make(chan struct{}, Or(in.MaxFetches, DefaultMaxFetches))
	})
	select {
	case in.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (in *Inputs) release() { <-in.sem }

// writeCache writes b to name through a temporary file in the same
// directory, so readers see either no file or all of it.
func writeCache(name string, b []byte) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".input-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) // no-op after a successful rename
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}

func (in *Inputs) session() (string, error) {
	if in.Session == nil {
		return "", nil
	}
	s, err := in.Session()
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(s), nil
}

func (in *Inputs) fetch(ctx context.Context, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	c := in.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: bad status %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
