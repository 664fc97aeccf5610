package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cellcomplex/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 nodes.
// Each traversal is O(V + E) ≈ O(V).
func BenchmarkDFS_Chain10000(b *testing.B) {
	next := chain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(0, next)
	}
}

// BenchmarkDFS_BinaryTree measures DFS on a complete binary tree of depth 14.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	const limit = 1 << 14
	children := func(i int) []int {
		if 2*i+1 < limit {
			return []int{2 * i, 2*i + 1}
		}
		return nil
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(1, children)
	}
}
