package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"

	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

// Loader implements pkgtemplate.Loader by delegating to file or fs.FS
// strategies. The engine cannot operate without its schema, so load failures
// propagate to the caller instead of degrading.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgtemplate.LoaderOptions) pkgtemplate.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgtemplate.Source) (pkgtemplate.Document, error) {
	if src == nil {
		return pkgtemplate.Document{}, errors.New("template loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgtemplate.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgtemplate.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("template loader: unsupported source kind")
	}
	if err != nil {
		return pkgtemplate.Document{}, err
	}

	return pkgtemplate.NewDocument(src, data)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("template loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
