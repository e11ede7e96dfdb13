package pipeline

import (
	"fmt"
	"os"

	"finq/internal/store"
)

// CachedLoad is a Load result plus cache metadata.
type CachedLoad struct {
	*Dataset
	FromCache bool
}

// LoadWithCache serves the dataset from the SQLite snapshot when none
// of the source files changed since it was written, and otherwise does
// a full load and refreshes the snapshot. All-or-nothing: the four
// files are small enough that partial invalidation isn't worth the
// bookkeeping.
func LoadWithCache(p Paths, cache *store.Cache) (*CachedLoad, error) {
	states := fileStates(p.All())

	tracked, err := cache.TrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	if len(tracked) > 0 && statesMatch(states, tracked) {
		actual, err := cache.LoadRows("actual")
		if err != nil {
			return nil, fmt.Errorf("loading cached actuals: %w", err)
		}
		budget, err := cache.LoadRows("budget")
		if err != nil {
			return nil, fmt.Errorf("loading cached budget: %w", err)
		}
		cash, err := cache.LoadCash()
		if err != nil {
			return nil, fmt.Errorf("loading cached cash: %w", err)
		}
		return &CachedLoad{Dataset: FromRows(actual, budget, cash), FromCache: true}, nil
	}

	ds, err := Load(p)
	if err != nil {
		return nil, err
	}
	if err := cache.SaveSnapshot(ds.Actual, ds.Budget, ds.Cash, states); err != nil {
		return nil, fmt.Errorf("writing cache: %w", err)
	}
	return &CachedLoad{Dataset: ds}, nil
}

// fileStates stats the given files. Missing files are omitted rather
// than failing, so an absent FX file never invalidates the snapshot.
func fileStates(paths []string) map[string]store.FileInfo {
	states := make(map[string]store.FileInfo, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		states[p] = store.FileInfo{MtimeNs: info.ModTime().UnixNano(), SizeBytes: info.Size()}
	}
	return states
}

func statesMatch(current, tracked map[string]store.FileInfo) bool {
	if len(current) != len(tracked) {
		return false
	}
	for path, s := range current {
		t, ok := tracked[path]
		if !ok || t != s {
			return false
		}
	}
	return true
}
