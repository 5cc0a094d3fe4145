package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/lib/xlog"
)

type opCode string

const (
	opInsertStart opCode = "insert_start"
	opInsertLast  opCode = "insert_last"
	opInsertAfter opCode = "insert_after"
	opDeleteFirst opCode = "delete_first"
	opDeleteLast  opCode = "delete_last"
	opDelete      opCode = "delete"
	opSearch      opCode = "search"
	opEmpty       opCode = "empty"
	opLen         opCode = "len"
	opPrint       opCode = "print"
	opReverse     opCode = "reverse"
)

// opArity is the number of values each operation takes.
var opArity = map[opCode]int{
	opInsertStart: 1,
	opInsertLast:  1,
	opInsertAfter: 2,
	opDeleteFirst: 0,
	opDeleteLast:  0,
	opDelete:      1,
	opSearch:      1,
	opEmpty:       0,
	opLen:         0,
	opPrint:       0,
	opReverse:     0,
}

var (
	errUnknownOp          = errors.New("[xlist] unknown operation")
	errOpArity            = errors.New("[xlist] wrong number of operation values")
	errReverseUnsupported = errors.New("[xlist] reverse requires the doubly linked list")
)

type op struct {
	code opCode
	args []string
	line int
}

// parseOp reads "<op> [value...]". Blank lines and # comments yield ok == false.
func parseOp(text string, line int) (o op, ok bool, err error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return op{}, false, nil
	}
	code := opCode(strings.ToLower(fields[0]))
	arity, known := opArity[code]
	if !known {
		ops := lo.Map(lo.Keys(opArity), func(c opCode, _ int) string { return string(c) })
		slices.Sort(ops)
		return op{}, false, infra.WrapErrorStackWithMessage(errUnknownOp,
			fmt.Sprintf("line %d: %q, expecting one of %s", line, fields[0], strings.Join(ops, ", ")))
	}
	if len(fields)-1 != arity {
		return op{}, false, infra.WrapErrorStackWithMessage(errOpArity,
			fmt.Sprintf("line %d: %s takes %d value(s), got %d", line, code, arity, len(fields)-1))
	}
	return op{code: code, args: fields[1:], line: line}, true, nil
}

func parseScript(r io.Reader, firstLine int) ([]op, error) {
	var (
		ops     []op
		scanner = bufio.NewScanner(r)
		line    = firstLine
	)
	for ; scanner.Scan(); line++ {
		o, ok, err := parseOp(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to read script")
	}
	return ops, nil
}

// collectOps reads the script first, the argument operations are
// numbered after its last line.
func collectOps(script string, stdin io.Reader, args []string) ([]op, error) {
	var ops []op
	switch script {
	case "":
	case "-":
		parsed, err := parseScript(stdin, 1)
		if err != nil {
			return nil, err
		}
		ops = parsed
	default:
		f, err := os.Open(script)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "unable to open script")
		}
		defer func() { _ = f.Close() }()
		parsed, err := parseScript(f, 1)
		if err != nil {
			return nil, err
		}
		ops = parsed
	}

	line := 1
	if len(ops) > 0 {
		line = ops[len(ops)-1].line + 1
	}
	for i, arg := range args {
		o, ok, err := parseOp(arg, line+i)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, o)
		}
	}
	return ops, nil
}

type runner struct {
	list   list.BasicLinkedList[string]
	doubly list.LinkedList[string] // nil for the singly linked list
	out    io.Writer
	logger xlog.XLogger
}

func newRunner(kind string, out io.Writer, logger xlog.XLogger) (*runner, error) {
	r := &runner{
		out:    out,
		logger: logger,
	}
	switch kind {
	case kindSingly:
		r.list = list.NewSinglyLinkedList[string]()
	case kindDoubly:
		r.doubly = list.NewDoublyLinkedList[string]()
		r.list = r.doubly
	default:
		return nil, infra.WrapErrorStackWithMessage(errUnknownKind, kind)
	}
	return r, nil
}

func (r *runner) run(ops []op) error {
	for _, o := range ops {
		if err := r.apply(o); err != nil {
			return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("line %d: %s", o.line, o.code))
		}
		r.logger.Debug("applied",
			zap.String("op", string(o.code)),
			zap.Strings("values", o.args),
			zap.Int64("len", r.list.Len()),
		)
	}
	return nil
}

func (r *runner) apply(o op) error {
	switch o.code {
	case opInsertStart:
		r.list.InsertAtStart(o.args[0])
	case opInsertLast:
		r.list.InsertAtLast(o.args[0])
	case opInsertAfter:
		at, ok := r.list.Search(o.args[0])
		if !ok {
			r.logger.Warn("anchor not found, nothing inserted",
				zap.Int("line", o.line),
				zap.String("anchor", o.args[0]),
			)
			return nil
		}
		if _, err := r.list.InsertAfter(at, o.args[1]); err != nil {
			return err
		}
	case opDeleteFirst:
		if _, ok := r.list.DeleteFirst(); !ok {
			r.logger.Debug("delete_first on an empty list", zap.Int("line", o.line))
		}
	case opDeleteLast:
		if _, ok := r.list.DeleteLast(); !ok {
			r.logger.Debug("delete_last on an empty list", zap.Int("line", o.line))
		}
	case opDelete:
		if !r.list.DeleteItem(o.args[0]) {
			r.logger.Debug("value not found, nothing deleted",
				zap.Int("line", o.line),
				zap.String("value", o.args[0]),
			)
		}
	case opSearch:
		_, ok := r.list.Search(o.args[0])
		return r.println(strconv.FormatBool(ok))
	case opEmpty:
		return r.println(strconv.FormatBool(r.list.IsEmpty()))
	case opLen:
		return r.println(strconv.FormatInt(r.list.Len(), 10))
	case opPrint:
		return r.list.PrintList(r.out)
	case opReverse:
		if r.doubly == nil {
			return errReverseUnsupported
		}
		return r.println(strings.Join(slices.Collect(r.doubly.Backward()), " "))
	default:
		return infra.WrapErrorStackWithMessage(errUnknownOp, string(o.code))
	}
	return nil
}

func (r *runner) println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}
