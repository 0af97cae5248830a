package timerange

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []Range
		want  []Range
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "single range",
			input: []Range{{1, 2}},
			want:  []Range{{1, 2}},
		},
		{
			name:  "disjoint ranges stay separate",
			input: []Range{{1, 2}, {3, 4}},
			want:  []Range{{1, 2}, {3, 4}},
		},
		{
			name:  "overlapping ranges merge",
			input: []Range{{10, 12}, {11.5, 14}},
			want:  []Range{{10, 14}},
		},
		{
			name:  "touching boundary counts as overlap",
			input: []Range{{1, 2}, {2, 3}},
			want:  []Range{{1, 3}},
		},
		{
			name:  "unsorted input",
			input: []Range{{5, 9}, {0, 2}, {2, 5}},
			want:  []Range{{0, 9}},
		},
		{
			name:  "contained range absorbed",
			input: []Range{{0, 10}, {2, 3}},
			want:  []Range{{0, 10}},
		},
		{
			name:  "chain of overlaps",
			input: []Range{{0, 1.5}, {1, 2.5}, {2, 3.5}, {5, 6}},
			want:  []Range{{0, 3.5}, {5, 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	input := []Range{{0, 2}, {1, 5}, {7, 8}, {8, 9}, {20, 21}}
	once := Merge(input)
	twice := Merge(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge is not idempotent: %v != %v", once, twice)
	}
}

func TestMergeOrderInvariant(t *testing.T) {
	input := []Range{{0, 2}, {1.5, 4}, {6, 7}, {7, 9}, {12, 13}}
	want := Merge(input)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]Range, len(input))
		copy(shuffled, input)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Merge(shuffled); !reflect.DeepEqual(got, want) {
			t.Fatalf("Merge(%v) = %v, want %v", shuffled, got, want)
		}
	}
}

func TestMergePreservesCoverage(t *testing.T) {
	input := []Range{{0, 3}, {2, 5}, {8, 10}, {10, 11}}
	merged := Merge(input)

	covered := func(ranges []Range, x float64) bool {
		for _, r := range ranges {
			if x >= r.Start && x <= r.End {
				return true
			}
		}
		return false
	}

	// sample points inside, on boundaries of, and between the inputs
	for _, x := range []float64{0, 1, 2, 3, 4.9, 5, 6, 7.5, 8, 9.5, 10, 11, 12} {
		if covered(input, x) != covered(merged, x) {
			t.Errorf("coverage differs at %v: input %v, merged %v",
				x, covered(input, x), covered(merged, x))
		}
	}
}
