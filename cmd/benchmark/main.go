package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/cascade"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure push propagation latency over chain grids",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Pushes per grid size",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "CPU profile output path",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func addOne(v int) int {
	return v + 1
}
func pass(int) error {
	return nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Int(itersKey))

	f, err := os.Create(cmd.String(profileKey))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	tbl := table.NewWriter()
	tbl.SetTitle("Cascade")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := cascade.NewSource(1)
			for i := 0; i < w; i++ {
				var last cascade.Signal[int] = cascade.From(src)
				for j := 0; j < h; j++ {
					last = cascade.Map(addOne, last)
				}
				if _, err := cascade.Sink(last, pass); err != nil {
					return err
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.Push(src.Value() + 1); err != nil {
					return err
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}
