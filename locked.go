package hashtable

import "sync"

// SyncTable guards a Table with a read/write mutex, so it can be shared
// between goroutines. Resizes still run inline with the writer that triggers them.
type SyncTable struct {
	mu sync.RWMutex
	t  Table
}

// Returns a new synchronized table with the default base size.
func NewSync(opts ...Option) *SyncTable {
	return NewSyncSized(DefaultBaseSize, opts...)
}

// Returns a new synchronized table with the given base size.
func NewSyncSized(baseSize int, opts ...Option) *SyncTable {
	var st SyncTable
	st.t.init(baseSize, opts...)

	return &st
}

func (st *SyncTable) Search(key string) (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.t.Search(key)
}

func (st *SyncTable) Insert(key, value string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.t.Insert(key, value)
}

func (st *SyncTable) Delete(key string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.t.Delete(key)
}

func (st *SyncTable) Compact() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.t.Compact()
}

func (st *SyncTable) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.t.Reset()
}

func (st *SyncTable) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.t.Len()
}

func (st *SyncTable) Stats() Stats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.t.Stats()
}
