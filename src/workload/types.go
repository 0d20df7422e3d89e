package workload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sw_data_structures/src/containers"
)

type Kind string

const (
	KindList  Kind = "list"
	KindQueue Kind = "queue"
	KindStack Kind = "stack"
)

var (
	ErrUnknownKind = errors.New("unknown container kind")
	ErrUnknownOp   = errors.New("unknown operation")
	ErrArity       = errors.New("wrong number of arguments")
	ErrCount       = errors.New("invalid operation count")
)

// arity lists the operations accepted for each kind and their argument count.
var arity = map[Kind]map[string]int{
	KindList: {
		"append":    1,
		"insert":    2,
		"item":      1,
		"remove":    1,
		"removeall": 0,
		"reverse":   0,
		"first":     0,
		"last":      0,
		"count":     0,
	},
	KindQueue: {
		"enqueue": 1,
		"dequeue": 0,
		"peek":    0,
		"clear":   0,
		"size":    0,
	},
	KindStack: {
		"push":  1,
		"pop":   0,
		"top":   0,
		"clear": 0,
		"size":  0,
	},
}

type Op struct {
	Line int
	Name string
	Args []string
}

type Workload struct {
	Kind Kind
	Ops  []Op

	declared int
}

// validate checks op against the operations accepted for kind.
func (op Op) validate(kind Kind) error {
	n, ok := arity[kind][op.Name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Name)
	}
	if len(op.Args) != n {
		return fmt.Errorf("%w for %s", ErrArity, op.Name)
	}
	if op.Name == "insert" || op.Name == "item" {
		if _, err := strconv.Atoi(op.Args[n-1]); err != nil {
			return err
		}
	}
	return nil
}

// Result is the outcome of one replayed operation.
type Result struct {
	Line    int
	Op      string
	Output  string
	Elapsed time.Duration
}

type Report struct {
	Kind    Kind
	Results *containers.LinkedList[Result]
	Final   string
	Size    int
}

func (op Op) String() string {
	if len(op.Args) == 0 {
		return op.Name
	}
	return op.Name + " " + strings.Join(op.Args, " ")
}

func (w *Workload) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "%s %d\n", w.Kind, len(w.Ops))
	for _, op := range w.Ops {
		s.WriteString(op.String())
		s.WriteRune('\n')
	}
	return s.String()
}

func (r Result) String() string {
	return fmt.Sprintf("%d: %s => %s (%v)", r.Line, r.Op, r.Output, r.Elapsed)
}

func (rep *Report) String() string {
	s := new(strings.Builder)
	for res := range rep.Results.All() {
		fmt.Fprintf(s, "%d: %s => %s\n", res.Line, res.Op, res.Output)
	}
	fmt.Fprintf(s, "Final %s (size %d): %s", rep.Kind, rep.Size, rep.Final)
	return s.String()
}
