package cpu

import (
	"errors"

	"github.com/ezrec/corelang/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackEmpty        = errors.New(f("stack empty"))
	ErrReturnEmpty       = errors.New(f("exited by calling ret"))
	ErrDivideByZero      = errors.New(f("division by zero is not allowed"))
	ErrProgramMissing    = errors.New(f("no program loaded"))
	ErrMemoryUnavailable = errors.New(f("memory not initialized"))

	// Instruction errors
	ErrOpcodeArgs  = errors.New(f("invalid number of arguments"))
	ErrOpcodeIo    = errors.New(f("console failure"))
	ErrOpcodeRange = errors.New(f("invalid range"))
	ErrFlagInvalid = errors.New(f("flag invalid"))

	// Assembler errors
	ErrMacroSyntax   = errors.New(f("invalid macro format"))
	ErrImportMissing = errors.New(f("import not found"))
	ErrImportLoader  = errors.New(f("no import loader"))
)

// ErrInstructionInvalid reports a mnemonic missing from the instruction table.
type ErrInstructionInvalid string

func (ei ErrInstructionInvalid) Error() string {
	return f("command '%v' not found", string(ei))
}

// ErrRegisterInvalid reports an unknown register name.
type ErrRegisterInvalid string

func (er ErrRegisterInvalid) Error() string {
	return f("invalid register name, %v", string(er))
}

// ErrLabelMissing reports a jump to an undeclared label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v not found", string(el))
}

// ErrMemoryLabelMissing reports an unknown memory region name.
type ErrMemoryLabelMissing string

func (el ErrMemoryLabelMissing) Error() string {
	return f("memory label %v not found", string(el))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrMemoryRange reports an access outside of the memory array.
type ErrMemoryRange struct {
	Address int
	Length  int
}

func (err ErrMemoryRange) Error() string {
	if err.Length > 1 {
		return f("invalid memory range 0x%X+%v", err.Address, err.Length)
	}
	return f("invalid memory address 0x%X", err.Address)
}

// ErrExit is an intentional process halt, carrying the exit status. Err
// is set when the halt came from something other than exit.
type ErrExit struct {
	Code int
	Err  error
}

func (err ErrExit) Error() string {
	if err.Err != nil {
		return f("exit %v: %v", err.Code, err.Err)
	}
	return f("exit %v", err.Code)
}

func (err ErrExit) Unwrap() error {
	return err.Err
}

// ErrOpcode attributes an instruction failure to its mnemonic.
type ErrOpcode struct {
	Mnemonic string
	Err      error
}

func (err *ErrOpcode) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a preprocessor problem in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
