package hexgrid

// Dir12 is a hex direction augmented with the transitional directions
// between the six cell neighbors, in clockwise order starting from North.
type Dir12 int

const (
	D12North Dir12 = iota
	D12NorthNorthEast
	D12NorthEast
	D12East
	D12SouthEast
	D12SouthSouthEast
	D12South
	D12SouthSouthWest
	D12SouthWest
	D12West
	D12NorthWest
	D12NorthNorthWest
)

// dir12Table gives every Dir12 value in order, so an index computed with
// modular arithmetic can be turned into a direction with a plain lookup.
var dir12Table = [12]Dir12{
	D12North,
	D12NorthNorthEast,
	D12NorthEast,
	D12East,
	D12SouthEast,
	D12SouthSouthEast,
	D12South,
	D12SouthSouthWest,
	D12SouthWest,
	D12West,
	D12NorthWest,
	D12NorthNorthWest,
}

// Dir12FromInt converts an integer to a twelve-direction using modular
// arithmetic.
func Dir12FromInt(i int) Dir12 {
	return dir12Table[modFloor(i, 12)]
}

// Dir12AwayFrom examines a six-cell neighbor occupancy mask and, if the
// occupied neighbors form exactly one contiguous cluster, returns the
// twelve-direction pointing away from the middle of that cluster. The
// boolean result is false when the mask is empty, full, or has more than
// one cluster.
func Dir12AwayFrom(neighbors [6]bool) (Dir12, bool) {
	begin, end, ok := findCluster(neighbors)
	if !ok {
		return 0, false
	}
	if !isSingleCluster(neighbors, begin, end) {
		return 0, false
	}

	clusterSize := end - begin
	if end < begin {
		clusterSize = end + 6 - begin
	}

	// Twelve-direction space from here on: each neighbor index spans two
	// Dir12 steps, and the cluster center lands on a whole step only for
	// odd-sized clusters.
	centerDir := begin*2 + (clusterSize - 1)
	return Dir12FromInt(centerDir + 6), true
}

// findCluster locates the start (inclusive) and end (exclusive) neighbor
// indices of an occupied run in the mask.
func findCluster(neighbors [6]bool) (begin, end int, ok bool) {
	begin, end = -1, -1
	for i := 0; i < 6; i++ {
		if begin == -1 && neighbors[i] && !neighbors[(i+5)%6] {
			begin = i
		}
		if end == -1 && !neighbors[i] && neighbors[(i+5)%6] {
			end = i
		}
	}
	if begin == -1 || end == -1 {
		// All-empty or all-full mask, no cluster boundary anywhere.
		return 0, 0, false
	}
	return begin, end, true
}

// isSingleCluster reports whether the mask is occupied exactly on the run
// from start (inclusive) to end (exclusive), wrapping around.
func isSingleCluster(neighbors [6]bool, start, end int) bool {
	inCluster := true
	for i := 0; i < 6; i++ {
		if (start+i)%6 == end {
			inCluster = false
		}
		if neighbors[(start+i)%6] != inCluster {
			return false
		}
	}
	return true
}
