package rankgo_test

import (
	"fmt"

	"github.com/hupe1980/rankgo"
)

func Example() {
	// Two categories: 0 = backend, 1 = frontend.
	reg, err := rankgo.New(2)
	if err != nil {
		panic(err)
	}

	for _, r := range []struct {
		id       string
		category int
		score    int64
	}{
		{"alice", 0, 9200},
		{"bob", 0, 8700},
		{"carol", 0, 9200},
		{"dave", 1, 6400},
	} {
		if _, err := reg.Register(r.id, r.category, r.score); err != nil {
			panic(err)
		}
	}

	// Scores change over time; entries are repositioned in O(log n).
	if err := reg.SetScore("bob", 9500); err != nil {
		panic(err)
	}

	top, err := reg.TopK(0, 3)
	if err != nil {
		panic(err)
	}

	for _, e := range top {
		fmt.Printf("%s %d\n", e.ID, e.Score)
	}
	// Output:
	// bob 9500
	// alice 9200
	// carol 9200
}
