package indicator

// Region classifies the selected index relative to the ends of the dot row.
type Region int

const (
	RegionStart Region = iota
	RegionCenter
	RegionEnd
)

func (r Region) String() string {
	switch r {
	case RegionStart:
		return "start"
	case RegionCenter:
		return "center"
	case RegionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ClassifyRegion places selectedIndex in the start, end or centre of a row of
// total dots whose window extends middleCount dots either side of centre.
// The start range is tested first, so when total is small enough for both
// ranges to contain selectedIndex the result is RegionStart.
func ClassifyRegion(selectedIndex, total, middleCount int) Region {
	switch {
	case selectedIndex >= 0 && selectedIndex <= middleCount:
		return RegionStart
	case selectedIndex >= total-middleCount-1 && selectedIndex < total:
		return RegionEnd
	default:
		return RegionCenter
	}
}
