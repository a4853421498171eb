package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cascade"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	repeats := flag.Int("repeats", 5, "timed runs per config, best kept")
	flag.Parse()

	log.Print("Starting cascade depth benchmark, please wait...")
	defer log.Print("Finished cascade depth benchmark")

	cfgs := []benchmarkConfig{
		{name: "narrow shallow", width: 2, depth: 5, iterations: 100_000},
		{name: "narrow deep", width: 2, depth: 500, iterations: 2_000},
		{name: "wide shallow", width: 1_000, depth: 5, iterations: 1_000},
		{name: "wide deep", width: 100, depth: 50, iterations: 1_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"framework", "size", "nTimes", "test", "time", "updateRate"})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		counter := new(int64)
		src := buildGrid(cfg, counter)

		best := time.Hour
		var bestCount int64
		for i := 0; i < *repeats; i++ {
			*counter = 0
			start := time.Now()
			for j := 0; j < cfg.iterations; j++ {
				if err := src.Push(j); err != nil {
					log.Fatal(err)
				}
			}
			if d := time.Since(start); d < best {
				best = d
				bestCount = *counter
			}
		}

		updateRate := float64(bestCount) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			"cascade",
			fmt.Sprintf("%dx%d", cfg.width, cfg.depth),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(best),
			humanize.Comma(int64(updateRate)),
		})
	}
	table.Render()
}

type benchmarkConfig struct {
	name         string
	width, depth int
	iterations   int
}

// buildGrid wires width parallel branches off one source, folds them
// pairwise, then hangs a depth-long chain off the fold before the sink.
func buildGrid(cfg benchmarkConfig, counter *int64) *cascade.Source[int] {
	src := cascade.NewSource(0)
	root := cascade.From(src)

	bump := func(v int) int {
		*counter++
		return v + 1
	}

	branches := make([]cascade.Signal[int], cfg.width)
	for i := range branches {
		branches[i] = cascade.Map(bump, root)
	}

	folded := branches[0]
	for _, b := range branches[1:] {
		folded = cascade.Map2(func(a, c int) int {
			*counter++
			return a + c
		}, folded, b)
	}

	for i := 0; i < cfg.depth; i++ {
		folded = cascade.Map(bump, folded)
	}

	if _, err := cascade.Sink(folded, func(int) error { return nil }); err != nil {
		log.Fatal(err)
	}
	return src
}
