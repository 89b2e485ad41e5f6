package rtree

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"
)

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func TestQuickselectMatchesSortAtK(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := rnd.Intn(50) + 1
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rnd.Intn(100)
		}
		k := rnd.Intn(n)

		want := append([]int(nil), arr...)
		sort.Ints(want)

		got := append([]int(nil), arr...)
		quickselect(got, k, 0, n-1, intCmp)

		if got[k] != want[k] {
			t.Fatalf("trial %d: quickselect[%d] = %d, want %d (arr=%v)", trial, k, got[k], want[k], arr)
		}
		for i := 0; i < k; i++ {
			if got[i] > got[k] {
				t.Fatalf("trial %d: element %d (%d) left of k (%d) is greater", trial, i, got[i], got[k])
			}
		}
		for i := k + 1; i < n; i++ {
			if got[i] < got[k] {
				t.Fatalf("trial %d: element %d (%d) right of k (%d) is smaller", trial, i, got[i], got[k])
			}
		}
	}
}

func TestQuickselectLargeInputUsesSamplingPath(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	n := 5000
	arr := make([]int, n)
	for i := range arr {
		arr[i] = rnd.Intn(1_000_000)
	}
	k := n / 3

	want := append([]int(nil), arr...)
	sort.Ints(want)

	quickselect(arr, k, 0, n-1, intCmp)
	if arr[k] != want[k] {
		t.Fatalf("quickselect[%d] = %d, want %d", k, arr[k], want[k])
	}
}

func TestMultiSelectBlocksAreOrdered(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	n := 97
	blockSize := 7
	arr := make([]int, n)
	for i := range arr {
		arr[i] = rnd.Intn(1000)
	}

	multiSelect(arr, 0, n-1, blockSize, intCmp)

	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		blockMax := arr[start]
		for i := start; i < end; i++ {
			if arr[i] > blockMax {
				blockMax = arr[i]
			}
		}
		for i := end; i < n; i++ {
			if arr[i] < blockMax {
				t.Fatalf("element %d (%d) in a later block is smaller than block max %d", i, arr[i], blockMax)
			}
		}
	}
}
