package tree

import "github.com/benz9527/xbst/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=BSTDirection -trimprefix=Dir
type BSTDirection int8

const (
	DirLeft BSTDirection = -1 + iota
	DirRoot
	DirRight
)

// BSTDuplicatePolicy is fixed when the tree is created.
//
//go:generate stringer -type=BSTDuplicatePolicy
type BSTDuplicatePolicy uint8

const (
	// DuplicateRight routes equal keys into the right subtree.
	// Every insert creates a node.
	DuplicateRight BSTDuplicatePolicy = iota
	// DuplicateReject ignores the insert of a key already present.
	DuplicateReject
)

// BSTNode is a read-only view of a tree node. A nil view stands for an
// absent node.
type BSTNode[K infra.OrderedKey] interface {
	Key() K
	Left() BSTNode[K]
	Right() BSTNode[K]
	HasLeft() bool
	HasRight() bool
}

// BSTree is an unbalanced binary search tree. It is not safe for
// concurrent use. Callers must synchronize a mutation (Insert, Remove,
// Release) against every other call on the same tree.
type BSTree[K infra.OrderedKey] interface {
	Len() int64
	Height() int
	Root() BSTNode[K]
	DuplicatePolicy() BSTDuplicatePolicy
	// Insert returns false only if the key is rejected by DuplicateReject.
	Insert(key K) bool
	// Search returns nil if the key is absent.
	Search(key K) BSTNode[K]
	Contains(key K) bool
	// Remove returns false if the key is absent.
	Remove(key K) bool
	Minimum() BSTNode[K]
	Maximum() BSTNode[K]
	// InOrder materializes all keys in ascending order.
	InOrder() []K
	// Foreach visits nodes in order until action returns false.
	Foreach(action func(idx int64, node BSTNode[K]) bool)
	// Walk visits nodes in pre-order with their depth and side until action
	// returns false. It serves renderers.
	Walk(action func(depth int, dir BSTDirection, node BSTNode[K]) bool)
	Release()
}
