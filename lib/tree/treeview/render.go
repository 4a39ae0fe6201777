// Package treeview prints the shape of a binary search tree, one node
// per line, with the left and right edges labelled.
package treeview

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
)

func label[K infra.OrderedKey](dir tree.BSTDirection, key K) string {
	switch dir {
	case tree.DirLeft:
		return fmt.Sprintf("L %v", key)
	case tree.DirRight:
		return fmt.Sprintf("R %v", key)
	default:
	}
	return fmt.Sprintf("%v", key)
}

// LeveledList flattens the tree in pre-order, the level is the node depth.
func LeveledList[K infra.OrderedKey](bst tree.BSTree[K]) pterm.LeveledList {
	if bst == nil {
		return pterm.LeveledList{}
	}
	list := make(pterm.LeveledList, 0, bst.Len())
	bst.Walk(func(depth int, dir tree.BSTDirection, node tree.BSTNode[K]) bool {
		list = append(list, pterm.LeveledListItem{
			Level: depth,
			Text:  label(dir, node.Key()),
		})
		return true
	})
	return list
}

// Render returns "" for an empty tree.
func Render[K infra.OrderedKey](bst tree.BSTree[K]) (string, error) {
	list := LeveledList[K](bst)
	if len(list) == 0 {
		return "", nil
	}
	root := putils.TreeFromLeveledList(list)
	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return "", infra.WrapErrorStack(err, "[treeview] render")
	}
	return out, nil
}
