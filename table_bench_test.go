package hashtable

import (
	"strconv"
	"testing"
)

var sizes = []int{
	1 << 10,
	1 << 16,
	// 1 << 20,
}

func BenchmarkSearch_Miss(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapSearchMiss))
	b.Run("variant=table", benchSimulateLoad(benchmarkTableSearchMiss))
}

func BenchmarkSearch_Hit(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapSearchHit))
	b.Run("variant=table", benchSimulateLoad(benchmarkTableSearchHit))
}

func BenchmarkInsert(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapInsert))
	b.Run("variant=table", benchSimulateLoad(benchmarkTableInsert))
}

func BenchmarkInsertDelete(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapInsertDelete))
	b.Run("variant=table", benchSimulateLoad(benchmarkTableInsertDelete))
}

func benchmarkStdMapSearchMiss(b *testing.B, size int) {
	m := make(map[string]string)
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for _, k := range keys {
		m[k] = k
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkTableSearchMiss(b *testing.B, size int) {
	t := New()
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for _, k := range keys {
		t.Insert(k, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Search(misses[i%len(misses)])
	}
}

func benchmarkStdMapSearchHit(b *testing.B, size int) {
	m := make(map[string]string)
	keys := genKeys(0, size)

	for _, k := range keys {
		m[k] = k
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkTableSearchHit(b *testing.B, size int) {
	t := New()
	keys := genKeys(0, size)

	for _, k := range keys {
		t.Insert(k, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Search(keys[i%len(keys)])
	}
}

func benchmarkStdMapInsert(b *testing.B, size int) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[string]string)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func benchmarkTableInsert(b *testing.B, size int) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := New()
		for _, k := range keys {
			t.Insert(k, k)
		}
	}
}

func benchmarkStdMapInsertDelete(b *testing.B, size int) {
	keys := genKeys(0, size)
	m := make(map[string]string)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		m[k] = k
		delete(m, k)
	}
}

func benchmarkTableInsertDelete(b *testing.B, size int) {
	keys := genKeys(0, size)
	t := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		t.Insert(k, k)
		t.Delete(k)
	}
}

func genKeys(start, end int) []string {
	keys := make([]string, end-start)
	for i := range keys {
		keys[i] = strconv.Itoa(start + i)
	}

	return keys
}

func benchSimulateLoad(benchFunc func(b *testing.B, size int)) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size)
			})
		}
	}
}
