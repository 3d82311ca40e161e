package vm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/tapevm/compiler"
	"github.com/cloudcmds/tapevm/lexer"
	"github.com/cloudcmds/tapevm/op"
)

func compile(t *testing.T, src string) *compiler.Program {
	t.Helper()
	program, err := compiler.Compile(lexer.Tokenize(src))
	require.Nil(t, err)
	return program
}

// run executes the given source with stdin/stdout replaced by buffers and
// returns the bytes written to the output sink.
func run(t *testing.T, src string, input string, options ...Option) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	options = append(options,
		WithInput(strings.NewReader(input)),
		WithOutput(&out))
	machine, err := New(compile(t, src), options...)
	require.Nil(t, err)
	err = machine.Run(context.Background())
	return out.Bytes(), err
}

func TestAddWraparound(t *testing.T) {
	// Cell at 250, then Add(10): wraps to 4.
	src := strings.Repeat("+", 250) + "><" + strings.Repeat("+", 10) + "."
	out, err := run(t, src, "")
	require.Nil(t, err)
	require.Equal(t, []byte{4}, out)
}

func TestSubWraparound(t *testing.T) {
	// Cell at 2, then Sub(5): wraps to 253.
	src := "++><-----."
	out, err := run(t, src, "")
	require.Nil(t, err)
	require.Equal(t, []byte{253}, out)
}

func TestShiftLeftSaturates(t *testing.T) {
	// Moving left past cell zero never errors: the cursor stays at zero.
	out, err := run(t, "><<<<+.", "")
	require.Nil(t, err)
	require.Equal(t, []byte{1}, out)
}

func TestTapeOverflow(t *testing.T) {
	_, err := run(t, ">>", "", WithTapeSize(1))
	require.EqualError(t, err, "tape overflowed: 1 cells => 1 cells")
}

func TestTapeOverflowAtExactBoundary(t *testing.T) {
	// The cell at index == tape length is already out of bounds.
	_, err := run(t, ">", "", WithTapeSize(1))
	require.EqualError(t, err, "tape overflowed: 1 cells => 0 cells")
}

func TestShiftRightWithinBounds(t *testing.T) {
	out, err := run(t, ">>+.", "", WithTapeSize(4))
	require.Nil(t, err)
	require.Equal(t, []byte{1}, out)
}

func TestOutputRepetition(t *testing.T) {
	// A folded Output carries its run length and writes the cell that
	// many times.
	out, err := run(t, "++...", "")
	require.Nil(t, err)
	require.Equal(t, []byte{2, 2, 2}, out)
}

func TestInputConsumesExactlyOneByte(t *testing.T) {
	// Three consecutive input symbols fold into Input(3), which still
	// reads exactly one byte when executed.
	out, err := run(t, ",,,.", "ABC")
	require.Nil(t, err)
	require.Equal(t, []byte{'A'}, out)
}

func TestInputSequential(t *testing.T) {
	out, err := run(t, ",.>,.", "XY")
	require.Nil(t, err)
	require.Equal(t, []byte{'X', 'Y'}, out)
}

func TestInputEndOfStream(t *testing.T) {
	_, err := run(t, ",", "")
	require.EqualError(t, err, "input read failed: EOF")
}

func TestLoopSkippedWhenCellZero(t *testing.T) {
	// JumpIfZero lands on its partner; the universal pc increment then
	// moves execution past the loop body.
	out, err := run(t, "[-]+.", "")
	require.Nil(t, err)
	require.Equal(t, []byte{1}, out)
}

func TestLoopCountsDown(t *testing.T) {
	// Move 5 from cell 0 into cell 1.
	out, err := run(t, "+++++[->+<]>.", "")
	require.Nil(t, err)
	require.Equal(t, []byte{5}, out)
}

func TestOperandValidation(t *testing.T) {
	// Add and Sub operands must be strictly below 255 at construction
	// time, even though execution arithmetic would wrap correctly. A run
	// of 254 identical symbols is the largest that compiles and runs.
	program := compile(t, strings.Repeat("+", 254))
	_, err := New(program)
	require.Nil(t, err)

	program = compile(t, strings.Repeat("+", 255))
	_, err = New(program)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "ADD operand out of range: 255 (must be below 255)")

	program = compile(t, strings.Repeat("-", 300))
	_, err = New(program)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "SUB operand out of range: 300")
}

func TestOperandValidationReportsAllViolations(t *testing.T) {
	src := strings.Repeat("+", 255) + ">" + strings.Repeat("-", 256)
	_, err := New(compile(t, src))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "instruction 0: ADD operand out of range: 255")
	require.Contains(t, err.Error(), "instruction 2: SUB operand out of range: 256")
}

func TestInvalidTapeSize(t *testing.T) {
	_, err := New(compile(t, "+"), WithTapeSize(0))
	require.EqualError(t, err, "tape size must be positive, got 0")
}

func TestRunTwice(t *testing.T) {
	machine, err := New(compile(t, "+"), WithOutput(&bytes.Buffer{}))
	require.Nil(t, err)
	require.Nil(t, machine.Run(context.Background()))
	require.EqualError(t, machine.Run(context.Background()), "vm has already run")
}

func TestDefaultTapeSize(t *testing.T) {
	machine, err := New(compile(t, "+"))
	require.Nil(t, err)
	require.Equal(t, 30_000, machine.TapeSize())
}

func TestValidationRejectsHandBuiltPrograms(t *testing.T) {
	program := compiler.NewProgram([]op.Instruction{
		{Op: op.Add, Operand: 1000},
	})
	_, err := New(program)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "operand out of range: 1000")
}

func BenchmarkRun(b *testing.B) {
	program, err := compiler.Compile(lexer.Tokenize(
		"+++++++[->++++++++++[->++++++++++<]<]"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		machine, err := New(program, WithOutput(&bytes.Buffer{}))
		if err != nil {
			b.Fatal(err)
		}
		if err := machine.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func TestHelloWorld(t *testing.T) {
	src := `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.++
+++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`
	out, err := run(t, src, "")
	require.Nil(t, err)
	require.Equal(t, "Hello World!\n", string(out))
}
