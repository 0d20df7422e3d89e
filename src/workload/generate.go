package workload

import (
	"fmt"
	"math/rand"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const hitRate = 0.7

// Generate writes a random workload of numOps operations. Every appended or
// pushed value is unique; live tracks the values currently held by a list so
// removals hit an existing value most of the time.
func Generate(kind Kind, numOps int, rng *rand.Rand) (string, error) {
	if _, ok := arity[kind]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	s := new(strings.Builder)
	fmt.Fprintf(s, "%s %d\n", kind, numOps)

	live := mapset.NewThreadUnsafeSet[string]()
	counter := 0
	fresh := func() string {
		counter++
		return fmt.Sprintf("v%d", counter)
	}

	for range numOps {
		r := rng.Float64()
		switch kind {
		case KindList:
			switch {
			case r < 0.4:
				v := fresh()
				live.Add(v)
				fmt.Fprintf(s, "append %s\n", v)
			case r < 0.55:
				v := fresh()
				idx := rng.Intn(live.Cardinality()+2) - 1
				if idx >= 0 && idx <= live.Cardinality() {
					live.Add(v)
				}
				fmt.Fprintf(s, "insert %s %d\n", v, idx)
			case r < 0.65:
				fmt.Fprintf(s, "item %d\n", rng.Intn(live.Cardinality()+1))
			case r < 0.85:
				v := fresh()
				if live.Cardinality() > 0 && rng.Float64() < hitRate {
					values := live.ToSlice()
					v = values[rng.Intn(len(values))]
					live.Remove(v)
				}
				fmt.Fprintf(s, "remove %s\n", v)
			case r < 0.9:
				s.WriteString("reverse\n")
			case r < 0.92:
				live.Clear()
				s.WriteString("removeall\n")
			case r < 0.95:
				s.WriteString("first\n")
			case r < 0.98:
				s.WriteString("last\n")
			default:
				s.WriteString("count\n")
			}
		case KindQueue, KindStack:
			push, pop, peek := "enqueue", "dequeue", "peek"
			if kind == KindStack {
				push, pop, peek = "push", "pop", "top"
			}
			switch {
			case r < 0.5:
				fmt.Fprintf(s, "%s %s\n", push, fresh())
			case r < 0.8:
				fmt.Fprintf(s, "%s\n", pop)
			case r < 0.9:
				fmt.Fprintf(s, "%s\n", peek)
			case r < 0.92:
				s.WriteString("clear\n")
			default:
				s.WriteString("size\n")
			}
		}
	}
	return s.String(), nil
}
