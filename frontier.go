package cityroute

// frontierItem is a candidate (city, tentative distance) pair
type frontierItem struct {
	id       string
	distance float64
}

// frontier is a min-heap of candidates ordered by tentative distance.
// Outdated entries for the same city are not removed: they are skipped when popped
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
