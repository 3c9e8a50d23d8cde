package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable is returned when the catalog source cannot be read.
// It is the only failure the catalog reports; row-level problems are
// absorbed by [Parse].
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// MaxSourceSize bounds how much of a catalog source is read (16MB).
const MaxSourceSize = 16 << 20

// sourceError reports a failed read of the catalog source. It matches both
// ErrSourceUnavailable and the underlying cause under errors.Is.
type sourceError struct {
	op  string
	err error
}

func (e *sourceError) Error() string {
	return ErrSourceUnavailable.Error() + ": " + e.op + ": " + e.err.Error()
}

func (e *sourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.err}
}

func unavailable(err error, format string, args ...any) error {
	return errors.WithStack(&sourceError{op: fmt.Sprintf(format, args...), err: err})
}

// utf8BOM is the byte order mark some spreadsheet exports prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadOptions configures [Load].
type LoadOptions struct {
	Placeholders Placeholders

	// Timeout bounds remote fetches. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// Client is used for http(s) sources. Defaults to http.DefaultClient.
	Client *http.Client
}

// Load reads the catalog from a local path or an http(s) URL and parses it.
// Any read failure is returned once, wrapped around ErrSourceUnavailable;
// no partial catalog is produced.
func Load(ctx context.Context, source string, opts LoadOptions) (*Catalog, error) {
	if strings.TrimSpace(source) == "" {
		return nil, unavailable(errors.New("no source configured"), "load")
	}

	var (
		raw []byte
		err error
	)
	if isRemote(source) {
		raw, err = fetch(ctx, source, opts)
	} else {
		raw, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	return New(Parse(normalize(raw), opts.Placeholders)), nil
}

// Read parses a catalog from r. It is the reader form of [Load] for callers
// that already hold the data.
func Read(r io.Reader, ph Placeholders) (*Catalog, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxSourceSize))
	if err != nil {
		return nil, unavailable(err, "read catalog")
	}
	return New(Parse(normalize(raw), ph)), nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(err, "open %s", path)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxSourceSize))
	if err != nil {
		return nil, unavailable(err, "read %s", path)
	}
	return raw, nil
}

func fetch(ctx context.Context, url string, opts LoadOptions) ([]byte, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, unavailable(err, "build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, unavailable(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(errors.Errorf("unexpected status %s", resp.Status), "fetch %s", url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxSourceSize))
	if err != nil {
		return nil, unavailable(err, "read %s", url)
	}
	return raw, nil
}

// normalize drops a leading BOM and replaces invalid UTF-8 with '?'.
func normalize(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	return string(bytes.ToValidUTF8(raw, []byte("?")))
}
