package chip8

import (
	"fmt"

	"github.com/retroenv/gbdisasm/internal/arch"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// decode decodes the big endian encoded instruction at the start of the
// window. It returns false for unassigned opcodes and windows shorter than
// one instruction.
func decode(window []byte) (arch.Instruction, bool) {
	if len(window) < opcodeSize {
		return arch.Instruction{}, false
	}

	opcode := uint16(window[0])<<8 | uint16(window[1])
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			return instruction("cls"), true
		case 0x00ee:
			return arch.Instruction{Name: "ret", Size: opcodeSize}, true
		default:
			return arch.Instruction{}, false
		}

	case 0x1:
		target := arch.Absolute(opcode & 0x0fff)
		return arch.Instruction{
			Name:      "jp",
			Size:      opcodeSize,
			Branch:    target,
			HasBranch: true,
			Operands:  []arch.Operand{arch.Addr(target)},
		}, true

	case 0x2:
		target := arch.Absolute(opcode & 0x0fff)
		return arch.Instruction{
			Name:         "call",
			Size:         opcodeSize,
			FallsThrough: true,
			Branch:       target,
			HasBranch:    true,
			Operands:     []arch.Operand{arch.Addr(target)},
		}, true

	case 0x3:
		return skip("se", registerX(opcode), immediate(opcode)), true

	case 0x4:
		return skip("sne", registerX(opcode), immediate(opcode)), true

	case 0x5:
		if opcode&0x000f != 0 {
			return arch.Instruction{}, false
		}
		return skip("se", registerX(opcode), registerY(opcode)), true

	case 0x6:
		return instruction("ld", registerX(opcode), immediate(opcode)), true

	case 0x7:
		return instruction("add", registerX(opcode), immediate(opcode)), true

	case 0x8:
		return decodeBinary(opcode)

	case 0x9:
		if opcode&0x000f != 0 {
			return arch.Instruction{}, false
		}
		return skip("sne", registerX(opcode), registerY(opcode)), true

	case 0xa:
		address := arch.Addr(arch.Absolute(opcode & 0x0fff))
		return instruction("ld", arch.Reg16("I"), address), true

	case 0xb:
		// the target depends on V0 at run time and cannot be followed
		address := arch.Addr(arch.Absolute(opcode & 0x0fff))
		return arch.Instruction{
			Name:     "jp",
			Size:     opcodeSize,
			Operands: []arch.Operand{arch.Reg8("V0"), address},
		}, true

	case 0xc:
		return instruction("rnd", registerX(opcode), immediate(opcode)), true

	case 0xd:
		nibble := arch.Imm8(byte(opcode & 0x000f))
		return instruction("drw", registerX(opcode), registerY(opcode), nibble), true

	case 0xe:
		switch opcode & 0x00ff {
		case 0x9e:
			return skip("skp", registerX(opcode)), true
		case 0xa1:
			return skip("sknp", registerX(opcode)), true
		default:
			return arch.Instruction{}, false
		}

	default: // 0xf
		return decodeSystem(opcode)
	}
}

// decodeBinary handles the register arithmetic block 8xy0-8xyE.
func decodeBinary(opcode uint16) (arch.Instruction, bool) {
	x := registerX(opcode)
	y := registerY(opcode)

	switch opcode & 0x000f {
	case 0x0:
		return instruction("ld", x, y), true
	case 0x1:
		return instruction("or", x, y), true
	case 0x2:
		return instruction("and", x, y), true
	case 0x3:
		return instruction("xor", x, y), true
	case 0x4:
		return instruction("add", x, y), true
	case 0x5:
		return instruction("sub", x, y), true
	case 0x6:
		return instruction("shr", x), true
	case 0x7:
		return instruction("subn", x, y), true
	case 0xe:
		return instruction("shl", x), true
	default:
		return arch.Instruction{}, false
	}
}

// decodeSystem handles the timer, input and memory block Fx07-Fx65.
func decodeSystem(opcode uint16) (arch.Instruction, bool) {
	x := registerX(opcode)

	switch opcode & 0x00ff {
	case 0x07:
		return instruction("ld", x, arch.Reg8("DT")), true
	case 0x0a:
		return instruction("ld", x, arch.Special("K")), true
	case 0x15:
		return instruction("ld", arch.Reg8("DT"), x), true
	case 0x18:
		return instruction("ld", arch.Reg8("ST"), x), true
	case 0x1e:
		return instruction("add", arch.Reg16("I"), x), true
	case 0x29:
		return instruction("ld", arch.Special("F"), x), true
	case 0x33:
		return instruction("ld", arch.Special("B"), x), true
	case 0x55:
		return instruction("ld", arch.Special("[I]"), x), true
	case 0x65:
		return instruction("ld", x, arch.Special("[I]")), true
	default:
		return arch.Instruction{}, false
	}
}

func instruction(name string, operands ...arch.Operand) arch.Instruction {
	return arch.Instruction{
		Name:         name,
		Size:         opcodeSize,
		FallsThrough: true,
		Operands:     operands,
	}
}

// skip builds a conditional skip instruction, the branch target is the
// instruction after the next one.
func skip(name string, operands ...arch.Operand) arch.Instruction {
	return arch.Instruction{
		Name:         name,
		Size:         opcodeSize,
		FallsThrough: true,
		Branch:       arch.Relative(opcodeSize),
		HasBranch:    true,
		Operands:     operands,
	}
}

func registerX(opcode uint16) arch.Operand {
	return arch.Reg8(fmt.Sprintf("V%X", (opcode>>8)&0x0f))
}

func registerY(opcode uint16) arch.Operand {
	return arch.Reg8(fmt.Sprintf("V%X", (opcode>>4)&0x0f))
}

func immediate(opcode uint16) arch.Operand {
	return arch.Imm8(byte(opcode & 0x00ff))
}
