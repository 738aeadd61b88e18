package layout

import "sync"

// ============================================================================
// Scratch Slice Pooling
// ============================================================================
//
// Stack positioning needs a per-call slice of child main-axis sizes. Nested
// stacks position recursively, so one engine-owned buffer would be clobbered;
// pooled slices keep the pass allocation-free after warm-up.
//
// Usage:
//   sizes := acquireSizes(n)
//   ... fill and use sizes ...
//   releaseSizes(sizes)

var sizePool = sync.Pool{
	New: func() any {
		s := make([]float32, 0, 16)
		return &s
	},
}

// acquireSizes gets a zeroed slice of length n from the pool.
// Caller must call releaseSizes when done.
func acquireSizes(n int) []float32 {
	p := sizePool.Get().(*[]float32)
	s := *p
	if cap(s) < n {
		sizePool.Put(p)
		return make([]float32, n, n*2)
	}
	s = s[:n]
	clear(s)
	return s
}

// releaseSizes returns a slice to the pool.
// The slice should not be used after calling this.
func releaseSizes(s []float32) {
	// Only pool slices up to a reasonable size to avoid memory bloat
	if s == nil || cap(s) > 256 {
		return
	}
	s = s[:0]
	sizePool.Put(&s)
}
