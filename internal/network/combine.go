package network

import (
	"context"
	"fmt"

	"github.com/vk/netvizgo/internal/ctxlog"
	"github.com/vk/netvizgo/internal/fsutil"
)

// Combine reads every network file in dir and merges them into one
// deduplicated Network. Files are processed in lexicographic filename order.
// A missing or empty directory yields an empty Network; any file that cannot
// be read or parsed aborts the whole run.
func Combine(ctx context.Context, dir string, opts Options) (*Network, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ListFiles(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered network files.", "dir", dir, "count", len(files))

	combined := New(opts)
	for _, file := range files {
		edges, err := ReadNetwork(file, opts)
		if err != nil {
			return nil, fmt.Errorf("combining networks: %w", err)
		}

		added := 0
		for _, e := range edges {
			if combined.Add(e) {
				added++
			}
		}
		logger.Debug("Merged network file.",
			"file", file, "rows", len(edges), "new_edges", added, "total_edges", combined.Len())
	}

	return combined, nil
}
