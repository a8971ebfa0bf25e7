package list

import "github.com/pkg/errors"

// Validate walks the ring in both directions and checks that every link is
// mirrored, that both walks visit Len() elements in opposite orders, and
// that no slot is held by a node outside the ring. It is meant for tests and
// debugging; it costs O(n).
func (l *List[T]) Validate() error {
	r := l.r
	forward := make([]uint32, 0, l.size)
	idx := r.root.next
	for steps := 0; idx != rootSlot; steps++ {
		if steps == l.size {
			return errors.Errorf("list: forward walk exceeds size %d", l.size)
		}
		if !r.live(idx) {
			return errors.Errorf("list: link to free slot %d", idx)
		}
		n := r.node(idx)
		if !r.live(n.next) || !r.live(n.prev) {
			return errors.Errorf("list: slot %d links to a free slot", idx)
		}
		if r.node(n.next).prev != idx || r.node(n.prev).next != idx {
			return errors.Errorf("list: links of slot %d are not mirrored", idx)
		}
		forward = append(forward, idx)
		idx = n.next
	}
	if len(forward) != l.size {
		return errors.Errorf("list: forward walk found %d elements, size is %d", len(forward), l.size)
	}

	idx = r.root.prev
	for i := len(forward) - 1; i >= 0; i-- {
		if idx != forward[i] {
			return errors.Errorf("list: backward walk diverges at position %d", i)
		}
		idx = r.node(idx).prev
	}
	if idx != rootSlot {
		return errors.New("list: backward walk does not return to the sentinel")
	}

	live := 0
	for _, s := range r.slots {
		if s.n != nil {
			live++
		}
	}
	if live != l.size+1 {
		return errors.Errorf("list: %d slots in use for %d elements", live, l.size)
	}
	if len(r.free)+live != len(r.slots) {
		return errors.Errorf("list: free list holds %d of %d free slots", len(r.free), len(r.slots)-live)
	}
	return nil
}

func (r *ring[T]) live(idx uint32) bool {
	return int(idx) < len(r.slots) && r.slots[idx].n != nil
}
