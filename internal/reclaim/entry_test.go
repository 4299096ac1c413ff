package reclaim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionNames(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantEntries []string
		wantLocks   []string
	}{
		{"empty", nil, nil, nil},
		{"entries and a lock", []string{"a", "a.lock", "b"}, []string{"a", "b"}, []string{"a.lock"}},
		{"only locks", []string{"y.lock", "x.lock"}, nil, []string{"x.lock", "y.lock"}},
		{"lock without entry", []string{"orphan.lock", "c"}, []string{"c"}, []string{"orphan.lock"}},
		{"stray files are entries", []string{"notes.txt", "a.lockfile"}, []string{"a.lockfile", "notes.txt"}, nil},
		{"bare extension is a lock", []string{".lock"}, nil, []string{".lock"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PartitionNames(tt.input)
			assert.Equal(t, tt.wantEntries, p.Entries)
			assert.Equal(t, tt.wantLocks, p.Locks)
		})
	}
}

func TestEntryForLock(t *testing.T) {
	assert.Equal(t, "a", EntryForLock("a.lock"))
	assert.Equal(t, "mod_1f3a", EntryForLock("mod_1f3a.lock"))
	assert.Equal(t, "plain", EntryForLock("plain"))
}
