package storage

import (
	"sync"

	"github.com/google/btree"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
)

const titleIndexDegree = 32

// MemStorage is a Storage backed by memory. Data is not written to disk and is lost when the process exits.
type MemStorage struct {
	mu    sync.RWMutex
	notes []*noticeboardpb.Note
	// titles maps a title to the position of its first occurrence in notes.
	titles *btree.BTree
}

func NewMemStorage(seed ...*noticeboardpb.Note) *MemStorage {
	ms := &MemStorage{
		titles: btree.New(titleIndexDegree),
	}
	ms.Append(seed...)
	return ms
}

func (ms *MemStorage) Append(notes ...*noticeboardpb.Note) {
	if len(notes) == 0 {
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, n := range notes {
		stored := noticeboardpb.CloneNote(n)
		if stored == nil {
			stored = new(noticeboardpb.Note)
		}
		key := titleItem{title: stored.Title, pos: len(ms.notes)}
		ms.notes = append(ms.notes, stored)
		// Duplicates keep pointing at the earliest note.
		if !ms.titles.Has(key) {
			ms.titles.ReplaceOrInsert(key)
		}
	}
}

func (ms *MemStorage) GetByTitle(title string) (*noticeboardpb.Note, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	item := ms.titles.Get(titleItem{title: title})
	if item == nil {
		return nil, ErrNoteNotFound
	}
	return noticeboardpb.CloneNote(ms.notes[item.(titleItem).pos]), nil
}

func (ms *MemStorage) Snapshot() []*noticeboardpb.Note {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	n := len(ms.notes)
	return ms.notes[:n:n]
}

func (ms *MemStorage) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.notes)
}

type titleItem struct {
	title string
	pos   int
}

func (it titleItem) Less(than btree.Item) bool {
	return it.title < than.(titleItem).title
}
