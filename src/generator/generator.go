package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"sw_data_structures/src/workload"
)

func main() {
	var outPath, kind string
	var numOps int
	var seed int64

	flag.StringVar(&outPath, "out", "out.txt", "The output file")
	flag.StringVar(&kind, "kind", "", "The container kind: list, queue or stack")
	flag.IntVar(&numOps, "ops", 0, "The number of operations")
	flag.Int64Var(&seed, "seed", 0, "The random seed, 0 picks one from the clock")

	flag.Parse()

	err := false
	if kind == "" {
		fmt.Fprintln(os.Stderr, "Must specify the container kind")
		err = true
	}
	if numOps <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify a positive number of operations")
		err = true
	}

	if err {
		os.Exit(1)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	text, genErr := workload.Generate(workload.Kind(kind), numOps, rand.New(rand.NewSource(seed)))
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		os.Exit(1)
	}
	if writeErr := os.WriteFile(outPath, []byte(text), 0666); writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		os.Exit(1)
	}
}
