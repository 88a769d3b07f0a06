package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 1→"1".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns idx+1 in decimal, the usual numbering in textbook
// multistage figures.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// ExcelColumnIDFn returns the "Excel-style" column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// labels returns idFn(0..n-1).
func labels(idFn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = idFn(i)
	}

	return out
}
