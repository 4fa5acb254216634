package roster

import "fmt"

// Depth counts manager hops from id up to the root.
func Depth(employees []Employee, id int) (int, error) {
	byID := make(map[int]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return depth(byID, id)
}

// MaxDepth returns the deepest chain in the roster.
func MaxDepth(employees []Employee) (int, error) {
	byID := make(map[int]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	deepest := 0
	for _, e := range employees {
		d, err := depth(byID, e.ID)
		if err != nil {
			return 0, err
		}
		deepest = max(deepest, d)
	}
	return deepest, nil
}

func depth(byID map[int]Employee, id int) (int, error) {
	hops := 0
	for {
		e, ok := byID[id]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownEmployee, id)
		}
		if !e.HasManager() {
			return hops, nil
		}
		hops++
		if hops > len(byID) {
			return 0, fmt.Errorf("%w: starting at %d", ErrCycle, id)
		}
		id = e.ManagerID
	}
}
