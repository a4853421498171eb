package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cascade/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the MapN combinator family",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest combinator arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for cascade started!")
	defer func() {
		log.Printf("Codegen for cascade finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)

	contents := templates.ArityGen(int(genericParamCount))
	return os.WriteFile("arity.go", []byte(contents), 0644)
}
