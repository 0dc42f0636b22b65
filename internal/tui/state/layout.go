package state

// RegionKind identifies what a clickable screen area does.
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionTaskPriority
	RegionTaskBody
	RegionSwatch
	RegionDraftInput
	RegionDraftPriorityDown
	RegionDraftPriorityUp
	RegionAddButton
	RegionDeleteButton
)

// Region is a rectangle on screen, half-open on both axes.
// Index is the task position or swatch number depending on Kind.
type Region struct {
	Kind   RegionKind
	Index  int
	X0, X1 int
	Y0, Y1 int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Same reports whether two regions refer to the same target.
func (r Region) Same(o Region) bool {
	return r.Kind != RegionNone && r.Kind == o.Kind && r.Index == o.Index
}

// IsTask reports whether the region belongs to a task row.
func (r Region) IsTask() bool {
	return r.Kind == RegionTaskPriority || r.Kind == RegionTaskBody
}

// Layout is the set of regions recorded during a render.
type Layout struct {
	Regions []Region
}

// Reset drops all regions.
func (l *Layout) Reset() {
	l.Regions = l.Regions[:0]
}

// Add records a region.
func (l *Layout) Add(r Region) {
	l.Regions = append(l.Regions, r)
}

// Hit returns the topmost region containing (x, y).
func (l Layout) Hit(x, y int) (Region, bool) {
	for i := len(l.Regions) - 1; i >= 0; i-- {
		if l.Regions[i].Contains(x, y) {
			return l.Regions[i], true
		}
	}
	return Region{}, false
}
