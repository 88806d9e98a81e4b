// Package benchmarks provides comparative benchmarks of min-lazy against
// popular Go collection and stream processing libraries.
package benchmarks

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// add returns the sum of two integers.
func add(a, b int) int {
	return a + b
}

// tableSide is the row and column count of the multiplication table
// benchmarks for a given element count.
func tableSide(size int) int {
	side := 1
	for side*side < size {
		side++
	}
	return side
}
