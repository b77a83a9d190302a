package arch

// Instruction is a single decoded instruction. It is ephemeral, decoding the
// same offset again yields an equal value.
type Instruction struct {
	// Name is the mnemonic, including any condition code.
	Name string
	// Size is the instruction length in bytes, at least 1.
	Size int
	// FallsThrough reports whether execution can continue at the following
	// instruction. False for unconditional jumps and returns.
	FallsThrough bool
	// Branch is the branch target if HasBranch is set.
	Branch    LogicalAddress
	HasBranch bool
	// Operands contains up to two operands for rendering.
	Operands []Operand
}

// BranchTarget returns the branch target of a control transfer instruction.
func (ins Instruction) BranchTarget() (LogicalAddress, bool) {
	return ins.Branch, ins.HasBranch
}

// OperandKind classifies an instruction operand for rendering.
type OperandKind uint8

const (
	// OperandImmediate8 is an 8 bit immediate value.
	OperandImmediate8 OperandKind = iota
	// OperandImmediate16 is a 16 bit immediate value.
	OperandImmediate16
	// OperandDisplacement is a signed displacement relative to the
	// instruction following the current one.
	OperandDisplacement
	// OperandRegister8 is an 8 bit register reference.
	OperandRegister8
	// OperandRegister16 is a 16 bit register reference.
	OperandRegister16
	// OperandIndirectRegister is a memory access through a register.
	OperandIndirectRegister
	// OperandAddress is a logical address, resolved at render time.
	OperandAddress
	// OperandSpecial is an architecture specific operand with fixed text.
	OperandSpecial
)

// Operand is a single typed instruction operand.
type Operand struct {
	Kind OperandKind

	Value        uint16         // immediate value
	Displacement int8           // signed displacement
	Register     string         // register name
	Address      LogicalAddress // address operand
	Text         string         // architecture specific operand text
}

// Imm8 returns an 8 bit immediate operand.
func Imm8(value byte) Operand {
	return Operand{Kind: OperandImmediate8, Value: uint16(value)}
}

// Imm16 returns a 16 bit immediate operand.
func Imm16(value uint16) Operand {
	return Operand{Kind: OperandImmediate16, Value: value}
}

// Disp returns a signed displacement operand.
func Disp(displacement int8) Operand {
	return Operand{Kind: OperandDisplacement, Displacement: displacement}
}

// Reg8 returns an 8 bit register operand.
func Reg8(name string) Operand {
	return Operand{Kind: OperandRegister8, Register: name}
}

// Reg16 returns a 16 bit register operand.
func Reg16(name string) Operand {
	return Operand{Kind: OperandRegister16, Register: name}
}

// Indirect returns a register indirect operand.
func Indirect(name string) Operand {
	return Operand{Kind: OperandIndirectRegister, Register: name}
}

// Addr returns an address operand.
func Addr(address LogicalAddress) Operand {
	return Operand{Kind: OperandAddress, Address: address}
}

// Special returns an architecture specific operand with fixed text.
func Special(text string) Operand {
	return Operand{Kind: OperandSpecial, Text: text}
}
