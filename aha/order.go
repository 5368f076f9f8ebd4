package aha

import "sort"

// gdbh returns the canonical node ordering: a right-to-left breadth-first
// traversal, reversed (bottom-up, left to right within a level), then stable
// sorted by weight. On a tree satisfying the sibling property the traversal
// alone is weight-monotone; the sort keeps weight blocks contiguous in the
// transient states seen mid-update.
func (t *Tree) gdbh() []*node {
	queue := []*node{t.root}
	var order []*node
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		if n.right != nil {
			queue = append(queue, n.right)
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].weight < order[j].weight })
	return order
}

// blockLeader returns the node n must swap with before its increment: the
// rightmost node of n's weight block, past n's own position, that is neither
// an ancestor nor a descendant of n. It returns nil when no such candidate
// exists, in which case the increment happens in place. Candidates before n's
// position are never considered, so a node already leading its block stays
// put.
func (t *Tree) blockLeader(n *node) *node {
	order := t.gdbh()
	idx := -1
	for i, cand := range order {
		if cand == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	end := idx
	for end+1 < len(order) && order[end+1].weight == n.weight {
		end++
	}
	for k := end; k > idx; k-- {
		cand := order[k]
		if isAncestor(cand, n) || isAncestor(n, cand) {
			continue
		}
		return cand
	}
	return nil
}

// isAncestor reports whether a is a proper ancestor of n.
func isAncestor(a, n *node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}

// swapSubtrees exchanges the subtrees rooted at a and b by rewriting the two
// parent-child links on each side; the children move with their roots.
// Neither node may be the root, and neither may be an ancestor of the other.
func swapSubtrees(a, b *node) {
	pa, pb := a.parent, b.parent
	if pa == nil || pb == nil {
		return
	}
	aLeft, bLeft := pa.left == a, pb.left == b
	if aLeft {
		pa.left = b
	} else {
		pa.right = b
	}
	if bLeft {
		pb.left = a
	} else {
		pb.right = a
	}
	a.parent, b.parent = pb, pa
}
