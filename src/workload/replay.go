package workload

import (
	"fmt"
	"strconv"
	"time"

	gods "github.com/emirpasic/gods/containers"

	"sw_data_structures/src/containers"
)

const noValue = "none"

type executor func(op Op) string

func optional(v string, ok bool) string {
	if !ok {
		return noValue
	}
	return v
}

func listExecutor(l *containers.LinkedList[string]) executor {
	return func(op Op) string {
		switch op.Name {
		case "append":
			l.Append(op.Args[0])
			return "ok"
		case "insert":
			idx, _ := strconv.Atoi(op.Args[1])
			return strconv.FormatBool(l.InsertItem(op.Args[0], idx))
		case "item":
			idx, _ := strconv.Atoi(op.Args[0])
			return optional(l.ItemAt(idx))
		case "remove":
			return strconv.FormatBool(l.RemoveItem(op.Args[0]))
		case "removeall":
			l.RemoveAll()
			return "ok"
		case "reverse":
			l.Reverse()
			return "ok"
		case "first":
			return optional(l.First())
		case "last":
			return optional(l.Last())
		default:
			return strconv.Itoa(l.Len())
		}
	}
}

func queueExecutor(q *containers.Queue[string]) executor {
	return func(op Op) string {
		switch op.Name {
		case "enqueue":
			q.EnQueue(op.Args[0])
			return "ok"
		case "dequeue":
			return optional(q.DeQueue())
		case "peek":
			return optional(q.Peek())
		case "clear":
			q.Clear()
			return "ok"
		default:
			return strconv.Itoa(q.Size())
		}
	}
}

func stackExecutor(s *containers.Stack[string]) executor {
	return func(op Op) string {
		switch op.Name {
		case "push":
			s.Push(op.Args[0])
			return "ok"
		case "pop":
			return optional(s.Pop())
		case "top":
			return optional(s.TopItem())
		case "clear":
			s.Clear()
			return "ok"
		default:
			return strconv.Itoa(s.Size())
		}
	}
}

func (w *Workload) target() (gods.Container, executor, error) {
	switch w.Kind {
	case KindList:
		l := containers.NewLinkedList[string]()
		return l, listExecutor(l), nil
	case KindQueue:
		q := containers.NewQueue[string]()
		return q, queueExecutor(q), nil
	case KindStack:
		s := containers.NewStack[string]()
		return s, stackExecutor(s), nil
	}
	return nil, nil, fmt.Errorf("%w %q", ErrUnknownKind, w.Kind)
}

// Replay runs every operation against a fresh container of the workload kind,
// timing each one. All operations are validated before the first one runs.
func (w *Workload) Replay() (*Report, error) {
	c, exec, err := w.target()
	if err != nil {
		return nil, err
	}

	for _, op := range w.Ops {
		if err := op.validate(w.Kind); err != nil {
			return nil, fmt.Errorf("line %d: %w", op.Line, err)
		}
	}

	results := containers.NewLinkedList[Result]()
	for _, op := range w.Ops {
		start := time.Now()
		out := exec(op)
		results.Append(Result{
			Line:    op.Line,
			Op:      op.String(),
			Output:  out,
			Elapsed: time.Since(start),
		})
	}

	return &Report{
		Kind:    w.Kind,
		Results: results,
		Final:   c.String(),
		Size:    c.Size(),
	}, nil
}
