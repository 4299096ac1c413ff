package reclaim

import (
	"sort"
	"strings"

	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// Partition splits the children of a cache directory into cache entries and
// lock markers
type Partition struct {
	// Entries are all names not ending in the lock extension.
	// Stray files land here too.
	Entries []string

	// Locks are the lock marker file names (<entry>.lock)
	Locks []string
}

// PartitionNames classifies names by the lock extension. Both lists are sorted.
func PartitionNames(names []string) Partition {
	var p Partition

	for _, name := range names {
		if strings.HasSuffix(name, paths.LockExt) {
			p.Locks = append(p.Locks, name)
		} else {
			p.Entries = append(p.Entries, name)
		}
	}

	sort.Strings(p.Entries)
	sort.Strings(p.Locks)

	return p
}

// EntryForLock returns the cache entry name a lock marker refers to
func EntryForLock(lock string) string {
	return strings.TrimSuffix(lock, paths.LockExt)
}
