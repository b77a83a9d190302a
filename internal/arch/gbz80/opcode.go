package gbz80

import (
	"fmt"

	"github.com/retroenv/gbdisasm/internal/arch"
)

// reg8Names indexes the standard 8 bit register encoding, index 6 denotes
// memory access through HL and is handled in reg8Operand.
var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "", "A"}

// reg16Names indexes the 16 bit register pair encoding.
var reg16Names = [4]string{"BC", "DE", "HL", "SP"}

// stackRegNames indexes the register pair encoding used by PUSH and POP.
var stackRegNames = [4]string{"BC", "DE", "HL", "AF"}

// aluNames indexes the rows of the arithmetic block 0x80-0xBF.
var aluNames = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

// shiftNames indexes the first 8 rows of the CB prefix table.
var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// condNames indexes the condition encoding of conditional jumps and calls.
var condNames = [4]string{"NZ", "Z", "NC", "C"}

// highRAMIndirect describes the memory access of LD (C),A and LD A,(C).
const highRAMIndirect = "(SYS:ff00 + C)"

// decode decodes the instruction at the start of the window. It returns false
// for unassigned opcodes and for windows too short to hold the full encoding.
func decode(window []byte) (arch.Instruction, bool) {
	if len(window) == 0 {
		return arch.Instruction{}, false
	}

	opcode := window[0]
	switch {
	case opcode < 0x40:
		return decodeBase(opcode, window)
	case opcode < 0x80:
		return decodeLoad(opcode), true
	case opcode < 0xc0:
		return decodeALU(opcode), true
	default:
		return decodeControl(opcode, window)
	}
}

// decodeBase handles the irregular first quarter of the opcode table.
func decodeBase(opcode byte, window []byte) (arch.Instruction, bool) {
	row := opcode >> 4

	switch opcode & 0x0f {
	case 0x00:
		switch row {
		case 0:
			return instruction("NOP", 1), true
		case 1:
			// the second byte of STOP is part of the encoding
			if len(window) < 2 {
				return arch.Instruction{}, false
			}
			return instruction("STOP", 2), true
		case 2:
			return jumpRelative("JR NZ", true, window)
		default:
			return jumpRelative("JR NC", true, window)
		}

	case 0x01:
		value, ok := imm16(window)
		if !ok {
			return arch.Instruction{}, false
		}
		return instruction("LD", 3, arch.Reg16(reg16Names[row]), arch.Imm16(value)), true

	case 0x02:
		return instruction("LD", 1, indirectStore(row), arch.Reg8("A")), true

	case 0x03:
		return instruction("INC", 1, arch.Reg16(reg16Names[row])), true

	case 0x04:
		return instruction("INC", 1, reg8Operand(row*2)), true

	case 0x05:
		return instruction("DEC", 1, reg8Operand(row*2)), true

	case 0x06:
		value, ok := imm8(window)
		if !ok {
			return arch.Instruction{}, false
		}
		return instruction("LD", 2, reg8Operand(row*2), arch.Imm8(value)), true

	case 0x07:
		return instruction([4]string{"RLCA", "RLA", "DAA", "SCF"}[row], 1), true

	case 0x08:
		switch row {
		case 0:
			value, ok := imm16(window)
			if !ok {
				return arch.Instruction{}, false
			}
			return instruction("LD", 3, arch.Addr(arch.Absolute(value)), arch.Reg16("SP")), true
		case 1:
			return jumpRelative("JR", false, window)
		case 2:
			return jumpRelative("JR Z", true, window)
		default:
			return jumpRelative("JR C", true, window)
		}

	case 0x09:
		return instruction("ADD", 1, arch.Reg16("HL"), arch.Reg16(reg16Names[row])), true

	case 0x0a:
		return instruction("LD", 1, arch.Reg8("A"), indirectStore(row)), true

	case 0x0b:
		return instruction("DEC", 1, arch.Reg16(reg16Names[row])), true

	case 0x0c:
		return instruction("INC", 1, reg8Operand(row*2+1)), true

	case 0x0d:
		return instruction("DEC", 1, reg8Operand(row*2+1)), true

	case 0x0e:
		value, ok := imm8(window)
		if !ok {
			return arch.Instruction{}, false
		}
		return instruction("LD", 2, reg8Operand(row*2+1), arch.Imm8(value)), true

	default: // 0x0f
		return instruction([4]string{"RRCA", "RRA", "CPL", "CCF"}[row], 1), true
	}
}

// decodeLoad handles the regular load block 0x40-0x7F with HALT at 0x76.
func decodeLoad(opcode byte) arch.Instruction {
	if opcode == 0x76 {
		return instruction("HALT", 1)
	}
	destination := (opcode >> 3) & 0x07
	source := opcode & 0x07
	return instruction("LD", 1, reg8Operand(destination), reg8Operand(source))
}

// decodeALU handles the arithmetic block 0x80-0xBF. ADD, ADC and SBC name the
// accumulator explicitly, the remaining operations imply it.
func decodeALU(opcode byte) arch.Instruction {
	name := aluNames[(opcode-0x80)>>3]
	operand := reg8Operand(opcode & 0x07)
	switch name {
	case "ADD", "ADC", "SBC":
		return instruction(name, 1, arch.Reg8("A"), operand)
	default:
		return instruction(name, 1, operand)
	}
}

// decodeControl handles the last quarter of the opcode table containing the
// control flow instructions and the immediate arithmetic forms.
func decodeControl(opcode byte, window []byte) (arch.Instruction, bool) {
	switch opcode {
	case 0xc0, 0xc8, 0xd0, 0xd8:
		return instruction("RET "+condNames[(opcode>>3)&0x03], 1), true

	case 0xc1, 0xd1, 0xe1, 0xf1:
		return instruction("POP", 1, arch.Reg16(stackRegNames[(opcode>>4)&0x03])), true

	case 0xc5, 0xd5, 0xe5, 0xf5:
		return instruction("PUSH", 1, arch.Reg16(stackRegNames[(opcode>>4)&0x03])), true

	case 0xc2, 0xca, 0xd2, 0xda:
		return jumpAbsolute("JP "+condNames[(opcode>>3)&0x03], true, window)

	case 0xc3:
		return jumpAbsolute("JP", false, window)

	case 0xc4, 0xcc, 0xd4, 0xdc:
		return jumpAbsolute("CALL "+condNames[(opcode>>3)&0x03], true, window)

	case 0xcd:
		return jumpAbsolute("CALL", true, window)

	case 0xc6, 0xce, 0xd6, 0xde, 0xe6, 0xee, 0xf6, 0xfe:
		return aluImmediate(opcode, window)

	case 0xc7, 0xcf, 0xd7, 0xdf, 0xe7, 0xef, 0xf7, 0xff:
		vector := arch.Absolute(uint16(opcode & 0x38))
		return arch.Instruction{
			Name:         "RST",
			Size:         1,
			FallsThrough: true,
			Branch:       vector,
			HasBranch:    true,
			Operands:     []arch.Operand{arch.Addr(vector)},
		}, true

	case 0xc9:
		return arch.Instruction{Name: "RET", Size: 1}, true

	case 0xd9:
		return arch.Instruction{Name: "RETI", Size: 1}, true

	case 0xcb:
		return decodeShift(window)

	case 0xe0, 0xf0:
		return loadHigh(opcode, window)

	case 0xe2:
		return instruction("LD", 1, arch.Special(highRAMIndirect), arch.Reg8("A")), true

	case 0xf2:
		return instruction("LD", 1, arch.Reg8("A"), arch.Special(highRAMIndirect)), true

	case 0xe8:
		value, ok := imm8(window)
		if !ok {
			return arch.Instruction{}, false
		}
		offset := arch.Special(fmt.Sprintf("%+d", int8(value)))
		return instruction("ADD", 2, arch.Reg16("SP"), offset), true

	case 0xe9:
		return arch.Instruction{
			Name:     "JP",
			Size:     1,
			Operands: []arch.Operand{arch.Indirect("HL")},
		}, true

	case 0xea, 0xfa:
		return loadAbsolute(opcode, window)

	case 0xf3:
		return instruction("DI", 1), true

	case 0xfb:
		return instruction("EI", 1), true

	case 0xf8:
		value, ok := imm8(window)
		if !ok {
			return arch.Instruction{}, false
		}
		offset := arch.Special(fmt.Sprintf("SP%+d", int8(value)))
		return instruction("LD", 2, arch.Reg16("HL"), offset), true

	case 0xf9:
		return instruction("LD", 1, arch.Reg16("SP"), arch.Reg16("HL")), true

	default:
		// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC and
		// 0xFD have no instruction assigned
		return arch.Instruction{}, false
	}
}

// decodeShift handles the CB prefixed shift, rotate and bit instructions.
func decodeShift(window []byte) (arch.Instruction, bool) {
	if len(window) < 2 {
		return arch.Instruction{}, false
	}

	opcode := window[1]
	operand := reg8Operand(opcode & 0x07)
	row := opcode >> 3
	if row < 8 {
		return instruction(shiftNames[row], 2, operand), true
	}

	var name string
	switch {
	case row < 16:
		name = "BIT"
	case row < 24:
		name = "RES"
	default:
		name = "SET"
	}
	return instruction(fmt.Sprintf("%s %d", name, row&0x07), 2, operand), true
}

func instruction(name string, size int, operands ...arch.Operand) arch.Instruction {
	return arch.Instruction{
		Name:         name,
		Size:         size,
		FallsThrough: true,
		Operands:     operands,
	}
}

func jumpRelative(name string, fallsThrough bool, window []byte) (arch.Instruction, bool) {
	value, ok := imm8(window)
	if !ok {
		return arch.Instruction{}, false
	}
	displacement := int8(value)
	return arch.Instruction{
		Name:         name,
		Size:         2,
		FallsThrough: fallsThrough,
		Branch:       arch.Relative(displacement),
		HasBranch:    true,
		Operands:     []arch.Operand{arch.Disp(displacement)},
	}, true
}

func jumpAbsolute(name string, fallsThrough bool, window []byte) (arch.Instruction, bool) {
	value, ok := imm16(window)
	if !ok {
		return arch.Instruction{}, false
	}
	address := arch.Absolute(value)
	return arch.Instruction{
		Name:         name,
		Size:         3,
		FallsThrough: fallsThrough,
		Branch:       address,
		HasBranch:    true,
		Operands:     []arch.Operand{arch.Addr(address)},
	}, true
}

func aluImmediate(opcode byte, window []byte) (arch.Instruction, bool) {
	value, ok := imm8(window)
	if !ok {
		return arch.Instruction{}, false
	}
	name := aluNames[(opcode-0xc0)>>3]
	switch name {
	case "ADD", "ADC", "SBC":
		return instruction(name, 2, arch.Reg8("A"), arch.Imm8(value)), true
	default:
		return instruction(name, 2, arch.Imm8(value)), true
	}
}

// loadHigh handles the LDH instructions accessing the 0xFF00 page.
func loadHigh(opcode byte, window []byte) (arch.Instruction, bool) {
	value, ok := imm8(window)
	if !ok {
		return arch.Instruction{}, false
	}
	address := arch.Addr(arch.Absolute(0xff00 | uint16(value)))
	if opcode == 0xe0 {
		return instruction("LDH", 2, address, arch.Reg8("A")), true
	}
	return instruction("LDH", 2, arch.Reg8("A"), address), true
}

func loadAbsolute(opcode byte, window []byte) (arch.Instruction, bool) {
	value, ok := imm16(window)
	if !ok {
		return arch.Instruction{}, false
	}
	address := arch.Addr(arch.Absolute(value))
	if opcode == 0xea {
		return instruction("LD", 3, address, arch.Reg8("A")), true
	}
	return instruction("LD", 3, arch.Reg8("A"), address), true
}

// reg8Operand returns the operand for the standard 8 bit register encoding,
// index 6 is the memory access through HL.
func reg8Operand(index byte) arch.Operand {
	if index == 6 {
		return arch.Indirect("HL")
	}
	return arch.Reg8(reg8Names[index])
}

// indirectStore returns the memory operand of the LD (rr),A and LD A,(rr)
// columns, rows 2 and 3 move HL after the access.
func indirectStore(row byte) arch.Operand {
	switch row {
	case 0:
		return arch.Indirect("BC")
	case 1:
		return arch.Indirect("DE")
	case 2:
		return arch.Special("(HL+)")
	default:
		return arch.Special("(HL-)")
	}
}

func imm8(window []byte) (byte, bool) {
	if len(window) < 2 {
		return 0, false
	}
	return window[1], true
}

func imm16(window []byte) (uint16, bool) {
	if len(window) < 3 {
		return 0, false
	}
	return uint16(window[1]) | uint16(window[2])<<8, true
}
