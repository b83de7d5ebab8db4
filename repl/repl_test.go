package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret_Commands(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		kind CommandKind
	}){
		{"quit()", COMMAND_QUIT},
		{"history()", COMMAND_HISTORY},
		{"program()", COMMAND_PROGRAM},
		{"registers()", COMMAND_REGISTERS},
		{"  registers()  ", COMMAND_REGISTERS},
	}

	for _, entry := range table {
		cmd, err := Interpret(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.kind, cmd.Kind, entry.line)
		assert.Empty(cmd.Bytes, entry.line)
	}
}

func TestInterpret_HexBytes(t *testing.T) {
	assert := assert.New(t)

	cmd, err := Interpret("01 00 01 f4")
	assert.NoError(err)
	assert.Equal(COMMAND_FEED, cmd.Kind)
	assert.Equal([]byte{1, 0, 1, 244}, cmd.Bytes)
}

func TestInterpret_Expressions(t *testing.T) {
	assert := assert.New(t)

	cmd, err := Interpret("01 00 $(0x01) $(500 - 256)")
	assert.NoError(err)
	assert.Equal(COMMAND_FEED, cmd.Kind)
	assert.Equal([]byte{1, 0, 1, 244}, cmd.Bytes)
}

func TestInterpret_BadTokens(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
	}){
		{"not_hex", "zz"},
		{"too_wide", "1f4"},
		{"bad_expr", "$(1 +)"},
		{"expr_range", "$(500)"},
		{"expr_negative", "$(-1)"},
		{"expr_not_int", "$('a')"},
	}

	for _, entry := range table {
		_, err := Interpret(entry.line)
		assert.Error(err, entry.name)
	}
}

func TestRepl_Feed(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	quit, err := repl.Eval("01 00 01 f4")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal(int32(500), repl.Vm.Register[0])
	assert.Equal(uint32(4), repl.Vm.Ip)
}

func TestRepl_FeedBadLine(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	// A bad line is recorded in the history but never reaches the
	// engine.
	quit, err := repl.Eval("01 zz")
	assert.Error(err)
	assert.False(quit)
	assert.Empty(repl.Vm.Program)
	assert.Equal([]string{"01 zz"}, repl.History)
}

func TestRepl_History(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	repl.Eval("00")
	repl.Eval("history()")

	assert.Equal([]string{"00", "history()"}, repl.History)
	assert.Equal("00\nhistory()\n", output.String())
}

func TestRepl_Program(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	repl.Eval("01 00 01 f4")
	repl.Eval("program()")

	assert.Equal("Current instructions as bytecode:\n01\n00\n01\nf4\n", output.String())
}

func TestRepl_Registers(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	repl.Eval("01 00 01 f4")
	repl.Eval("registers()")

	assert.Contains(output.String(), "r00: 0000_01F4")
}

func TestRepl_Quit(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	repl := NewRepl(output)

	quit, err := repl.Eval("quit()")
	assert.NoError(err)
	assert.True(quit)
	assert.Empty(output.String())
}
