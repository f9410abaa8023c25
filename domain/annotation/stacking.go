package annotation

import "sort"

// Restack assigns z-order by descending area: the largest box gets 0 and is
// painted first, the smallest ends up on top. Equal areas keep collection order.
// It returns the boxes in paint order.
func Restack(boxes []*Box) []*Box {
	ordered := make([]*Box, len(boxes))
	copy(ordered, boxes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area() > ordered[j].Area()
	})
	for z, b := range ordered {
		b.z = z
	}
	return ordered
}
