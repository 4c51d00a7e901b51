package heap

import (
	"testing"

	"heap_master/consts"
)

const benchRegionSize = 1 << 30

func mustNewBenchRegion(b *testing.B) *Region {
	b.Helper()
	r, err := New(benchRegionSize, nil)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	return r
}

// refillIfFull 区域快耗尽时换一块新的，换区时间不计入。
func refillIfFull(b *testing.B, r *Region, need uint64) *Region {
	if r.Remaining() >= need+consts.HeaderSize+consts.Align {
		return r
	}
	b.StopTimer()
	_ = r.Close()
	r = mustNewBenchRegion(b)
	b.StartTimer()
	return r
}

func BenchmarkAlloc(b *testing.B) {
	r := mustNewBenchRegion(b)
	defer func() { _ = r.Close() }()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = refillIfFull(b, r, 64)
		if _, ok := r.Alloc(64); !ok {
			b.Fatal("Alloc failed")
		}
	}
}

func BenchmarkAllocPage(b *testing.B) {
	r := mustNewBenchRegion(b)
	defer func() { _ = r.Close() }()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = refillIfFull(b, r, 4096)
		if _, ok := r.Alloc(4096); !ok {
			b.Fatal("Alloc failed")
		}
	}
}

func BenchmarkAllocZeroed(b *testing.B) {
	r := mustNewBenchRegion(b)
	defer func() { _ = r.Close() }()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = refillIfFull(b, r, 64)
		if _, ok := r.AllocZeroed(8, 8); !ok {
			b.Fatal("AllocZeroed failed")
		}
	}
}

func BenchmarkResizeGrow(b *testing.B) {
	r := mustNewBenchRegion(b)
	defer func() { _ = r.Close() }()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = refillIfFull(b, r, 256)
		off, ok := r.Alloc(64)
		if !ok {
			b.Fatal("Alloc failed")
		}
		if _, ok := r.Resize(off, 128); !ok {
			b.Fatal("Resize failed")
		}
	}
}
