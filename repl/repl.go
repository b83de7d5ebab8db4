// Package repl implements the interactive front end for the firefaith
// virtual machine.
//
// Line interpretation is a pure step from operator text to a Command;
// the Repl applies commands to the engine it owns, and the outer driver
// decides when to stop its loop. The engine never sees text, only the
// instruction bytes decoded here.
package repl

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/firefaith/vm"
)

// CommandKind selects the action requested by one line of input.
type CommandKind int

//go:generate go tool stringer -linecomment -type=CommandKind
const (
	COMMAND_QUIT      = CommandKind(0) // quit
	COMMAND_HISTORY   = CommandKind(1) // history
	COMMAND_PROGRAM   = CommandKind(2) // program
	COMMAND_REGISTERS = CommandKind(3) // registers
	COMMAND_FEED      = CommandKind(4) // feed
)

// Command is one interpreted line of operator input.
type Command struct {
	Kind  CommandKind
	Bytes []byte // Instruction bytes to feed, for COMMAND_FEED.
}

// Interpret maps one input line to a Command. It has no side effects;
// when it reports an error there is nothing to apply and the line is
// discarded.
func Interpret(line string) (cmd Command, err error) {
	switch strings.TrimSpace(line) {
	case "quit()":
		cmd.Kind = COMMAND_QUIT
	case "history()":
		cmd.Kind = COMMAND_HISTORY
	case "program()":
		cmd.Kind = COMMAND_PROGRAM
	case "registers()":
		cmd.Kind = COMMAND_REGISTERS
	default:
		cmd.Kind = COMMAND_FEED
		cmd.Bytes, err = parseBytes(line)
	}

	return
}

// tokenRe matches one byte token: a $(expr) expression, which may
// contain spaces, or a bare word.
var tokenRe = regexp.MustCompile(`\$\([^)]*\)|\S+`)

// parseBytes splits a line into whitespace-separated byte tokens. A
// token is either a two-character hexadecimal byte or a $(expr)
// expression evaluating to a value in 0-255.
func parseBytes(line string) (bytes []byte, err error) {
	for _, token := range tokenRe.FindAllString(line, -1) {
		var value uint32
		if strings.HasPrefix(token, "$(") && strings.HasSuffix(token, ")") {
			value, err = evalExpression(token[2 : len(token)-1])
			if err != nil {
				return
			}
			if value > 0xff {
				err = ErrByteRange(token)
				return
			}
		} else {
			var parsed uint64
			parsed, err = strconv.ParseUint(token, 16, 8)
			if err != nil {
				err = ErrParseByte(token)
				return
			}
			value = uint32(parsed)
		}
		bytes = append(bytes, byte(value))
	}

	return
}

// evalExpression evaluates a $(expr) token as a starlark expression
// returning an integer value.
func evalExpression(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)

	return
}

// Repl owns the engine, the operator command history, and the output
// stream for state display.
type Repl struct {
	History []string
	Vm      *vm.Vm
	Output  io.Writer
}

// NewRepl creates a front end around a fresh engine.
func NewRepl(output io.Writer) (repl *Repl) {
	repl = &Repl{
		Vm:     vm.NewVm(),
		Output: output,
	}

	return
}

// Eval records one input line, interprets it, and applies the resulting
// command. A fed line appends its bytes to the engine's program and
// executes one instruction. The quit decision is returned to the
// caller; Eval never ends the process itself.
func (repl *Repl) Eval(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	repl.History = append(repl.History, line)

	cmd, err := Interpret(line)
	if err != nil {
		return
	}

	switch cmd.Kind {
	case COMMAND_QUIT:
		quit = true
	case COMMAND_HISTORY:
		for _, prior := range repl.History {
			fmt.Fprintln(repl.Output, prior)
		}
	case COMMAND_PROGRAM:
		fmt.Fprintln(repl.Output, "Current instructions as bytecode:")
		for _, b := range repl.Vm.Program {
			fmt.Fprintf(repl.Output, "%02x\n", b)
		}
	case COMMAND_REGISTERS:
		fmt.Fprint(repl.Output, repl.Vm.String())
	case COMMAND_FEED:
		repl.Vm.AppendBytes(cmd.Bytes...)
		_, err = repl.Vm.Step()
	}

	return
}
