package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-rddlgen/pkg/problem"
)

// Loader implements problem.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ problem.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options problem.LoaderOptions) problem.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a problem description from the provided source and wraps it in
// a Document.
func (l *Loader) Load(ctx context.Context, src problem.Source) (problem.Document, error) {
	if src == nil {
		return problem.Document{}, errors.New("problem loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case problem.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case problem.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case problem.SourceKindURL:
		if !l.allowHTTP {
			return problem.Document{}, errors.New("problem loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("problem loader: unsupported source kind")
	}
	if err != nil {
		return problem.Document{}, err
	}

	return problem.NewDocument(src, data)
}
