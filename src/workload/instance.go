package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxPrealloc bounds the capacity taken from an untrusted header.
const maxPrealloc = 4096

func errorCoalesce(args ...error) error {
	for _, e := range args {
		if e != nil {
			return e
		}
	}
	return nil
}

func (w *Workload) parseFirstLine(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("Error while parsing first line: missing header")
	}
	line := strings.Fields(scanner.Text())
	if len(line) != 2 {
		return fmt.Errorf("Error while parsing first line: %w", ErrArity)
	}
	kind := Kind(line[0])
	if _, ok := arity[kind]; !ok {
		return fmt.Errorf("Error while parsing first line: %w %q", ErrUnknownKind, line[0])
	}
	numOps, err := strconv.Atoi(line[1])
	if err != nil {
		return fmt.Errorf("Error while parsing first line: %v", err)
	}
	if numOps < 0 {
		return fmt.Errorf("Error while parsing first line: %w %d", ErrCount, numOps)
	}

	w.Kind = kind
	w.declared = numOps
	w.Ops = make([]Op, 0, min(numOps, maxPrealloc))
	return nil
}

func (w *Workload) parseOps(scanner *bufio.Scanner) error {
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.Fields(scanner.Text())
		if len(line) == 0 {
			continue
		}
		op := Op{Line: lineNum, Name: line[0], Args: line[1:]}
		if err := op.validate(w.Kind); err != nil {
			return fmt.Errorf("Error while parsing operation at line %d: %w", lineNum, err)
		}
		w.Ops = append(w.Ops, op)
	}
	return scanner.Err()
}

func (w *Workload) checkCount() error {
	if len(w.Ops) != w.declared {
		return fmt.Errorf("%w: header declares %d, found %d", ErrCount, w.declared, len(w.Ops))
	}
	return nil
}

func Parse(r io.Reader) (*Workload, error) {
	w := new(Workload)
	scanner := bufio.NewScanner(r)
	err := errorCoalesce(
		w.parseFirstLine(scanner),
		w.parseOps(scanner),
		w.checkCount(),
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func LoadWorkload(filename string) (*Workload, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}
