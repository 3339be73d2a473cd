package engine

import "github.com/trustnet/flowengine/types"

// scheduleTransfers orders transfers so that every participant has
// received all inbound transfers it depends on before it initiates its
// own: it tracks, per address, how many pending transfers
// still target it, and repeatedly drains a work queue, deferring any
// transfer whose sender still has pending receipts. A full pass over the
// queue with no emission means the remaining transfers form a funding
// cycle, which extractTransfers should never produce; that is reported
// as a fatal invariant violation rather than looped on forever.
func scheduleTransfers(transfers []types.Edge) ([]types.Edge, error) {
	pending := make(map[types.Address]int)
	for _, e := range transfers {
		pending[e.To]++
		if _, ok := pending[e.From]; !ok {
			pending[e.From] = 0
		}
	}

	queue := append([]types.Edge(nil), transfers...)
	result := make([]types.Edge, 0, len(transfers))

	for len(queue) > 0 {
		passLen := len(queue)
		emitted := false

		for i := 0; i < passLen; i++ {
			e := queue[0]
			queue = queue[1:]
			if pending[e.From] == 0 {
				pending[e.To]--
				result = append(result, e)
				emitted = true
			} else {
				queue = append(queue, e)
			}
		}

		if !emitted {
			return nil, invariantf("scheduler: no progress",
				"%d transfer(s) remain in a funding cycle", len(queue))
		}
	}

	return result, nil
}
