// Package source fetches raw question bank bytes. It is the transport in
// front of the parser and knows nothing about the bank format beyond picking
// a parser by extension.
package source

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

//go:embed sample/questions.csv
var sampleBank []byte

// SampleLocation names the bank embedded in the binary.
const SampleLocation = "sample:"

// StdinLocation reads the bank from standard input.
const StdinLocation = "-"

// DefaultTimeout bounds a URL fetch.
const DefaultTimeout = 15 * time.Second

// maxBankSize caps how much is read from any location.
const maxBankSize = 16 << 20

// Format identifies which parser a document needs.
type Format string

const (
	FormatDelimited Format = "delimited"
	FormatJSON      Format = "json"
)

// FetchError reports that raw text could not be obtained.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Document is the raw content of a bank plus its detected format.
type Document struct {
	Location string
	Format   Format
	Data     []byte
}

// Loader fetches documents.
type Loader struct {
	Client *http.Client
	Stdin  io.Reader

	stdinData []byte // set by BufferStdin
}

// NewLoader returns a Loader with a timeout-bounded HTTP client.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		Client: &http.Client{Timeout: timeout},
		Stdin:  os.Stdin,
	}
}

// Load fetches the document at location: a file path, "-" for stdin, an
// http(s) URL, or "sample:" (also used when location is empty).
func (l *Loader) Load(ctx context.Context, location string) (*Document, error) {
	if location == "" {
		location = SampleLocation
	}

	data, err := l.read(ctx, location)
	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}

	return &Document{
		Location: location,
		Format:   DetectFormat(location),
		Data:     data,
	}, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == SampleLocation:
		return sampleBank, nil
	case location == StdinLocation:
		if l.stdinData != nil {
			return l.stdinData, nil
		}
		if l.Stdin == nil {
			return nil, fmt.Errorf("no stdin available")
		}
		return io.ReadAll(io.LimitReader(l.Stdin, maxBankSize))
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return l.fetchURL(ctx, location)
	default:
		return os.ReadFile(location)
	}
}

// BufferStdin reads stdin once so that every later Load of "-" returns the
// same content. Call it before anything else starts reading the terminal.
func (l *Loader) BufferStdin() error {
	if l.Stdin == nil {
		return &FetchError{Location: StdinLocation, Err: errors.New("no stdin available")}
	}
	data, err := io.ReadAll(io.LimitReader(l.Stdin, maxBankSize))
	if err != nil {
		return &FetchError{Location: StdinLocation, Err: err}
	}
	if data == nil {
		data = []byte{}
	}
	l.stdinData = data
	return nil
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBankSize))
}

// DetectFormat picks the parser for a location by its extension.
func DetectFormat(location string) Format {
	loc := location
	if i := strings.IndexAny(loc, "?#"); i >= 0 && strings.Contains(loc, "://") {
		loc = loc[:i]
	}
	if strings.EqualFold(path.Ext(loc), ".json") {
		return FormatJSON
	}
	return FormatDelimited
}
