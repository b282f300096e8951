package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-auditor/internal/corpus"
)

// bulkWorkers bounds file-reading parallelism during directory ingestion.
const bulkWorkers = 8

// IngestDir loads every .txt/.html file under dir into the corpus and
// returns the number of postings inserted. Files are read and cleaned in
// parallel; a single unreadable file fails the whole ingest.
func IngestDir(ctx context.Context, db *corpus.DB, dir string, postedAt time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		lower := strings.ToLower(entry.Name())
		if strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no posting files found in %s", dir)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkWorkers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			text, err := ReadPosting(path)
			if err != nil {
				return err
			}
			if text == "" {
				return fmt.Errorf("posting %s is empty after cleaning", path)
			}
			_, err = db.InsertPosting(gctx, filepath.Base(path), text, postedAt)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(paths), nil
}
