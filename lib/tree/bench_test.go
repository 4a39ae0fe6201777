package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/openacid/testkeys"
	"github.com/petar/GoLLRB/llrb"
)

const benchN = 100_000

func benchKeys() []int {
	return randv2.Perm(benchN)
}

func BenchmarkBSTree_Insert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewBSTree[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkBSTree_Search(b *testing.B) {
	keys := benchKeys()
	tree := NewBSTree[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Search(keys[i%benchN])
	}
}

func BenchmarkBSTree_InsertRemove(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewBSTree[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		for _, k := range keys {
			tree.Remove(k)
		}
	}
}

func BenchmarkGoogleBTree_Insert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkGoogleBTree_InsertRemove(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			tree.Delete(k)
		}
	}
}

func BenchmarkGodsRBTree_Insert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkLLRB_Search(b *testing.B) {
	keys := benchKeys()
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Get(llrb.Int(keys[i%benchN]))
	}
}

func BenchmarkBSTree_WordsInsert(b *testing.B) {
	for _, fn := range testkeys.AssetNames() {
		keys := testkeys.Load(fn)
		if n := len(keys); n < 1000 || n > 200_000 {
			continue
		}
		// Key sets are sorted, shuffle to avoid a degenerated chain.
		shuffled := make([]string, len(keys))
		copy(shuffled, keys)
		randv2.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		b.Run(fn, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree := NewBSTree[string]()
				for _, k := range shuffled {
					tree.Insert(k)
				}
			}
		})
	}
}
