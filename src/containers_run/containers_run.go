package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"sw_data_structures/src/containers"
	"sw_data_structures/src/workload"
)

func main() {
	var quiet bool
	var slowest int
	paths := containers.NewQueue[string]()

	flag.Func("workload", "a list of workload file paths, separated by a whitespace", func(s string) error {
		for _, p := range strings.Fields(s) {
			paths.EnQueue(p)
		}
		return nil
	})
	flag.BoolVar(&quiet, "quiet", false, "Print only the final state and the timing summary")
	flag.IntVar(&slowest, "slowest", 0, "Print the given number of slowest operations")

	flag.Parse()

	if paths.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}

	for p, ok := paths.DeQueue(); ok; p, ok = paths.DeQueue() {
		w, err := workload.LoadWorkload(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for workload \"%v\": %v. Skipping...\n", p, err)
			continue
		}

		fmt.Printf("Replaying %v...\n", p)
		rep, err := w.Replay()
		if err != nil {
			fmt.Fprintf(os.Stderr, "An error occured while replaying workload \"%v\": %v\n", p, err)
			continue
		}
		if quiet {
			fmt.Printf("Final %s (size %d): %s\n", rep.Kind, rep.Size, rep.Final)
		} else {
			fmt.Println(rep)
		}
		fmt.Print(rep.Summarize())
		if slowest > 0 {
			fmt.Println("Slowest:")
			for _, res := range rep.Slowest(slowest) {
				fmt.Println(res)
			}
		}
		fmt.Println()
	}
}
