// Package listing renders classified image offsets into display lines shared
// by the interactive viewer and the file writer.
package listing

import (
	"fmt"
	"strings"

	"github.com/retroenv/gbdisasm/internal/arch"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/nav"
)

// operandColumn is the column the operands start at, relative to the
// instruction name.
const operandColumn = 6

// Line is a rendered line of the listing. Length is the number of image
// bytes the line covers.
type Line struct {
	Offset int
	Length int
	Label  string
	Bytes  string
	Text   string
}

// Builder renders lines for a disassembler state.
type Builder struct {
	dis       *disasm.Disasm
	labels    *nav.Labels
	constants map[uint16]string
}

// NewBuilder creates a new line builder.
func NewBuilder(dis *disasm.Disasm, labels *nav.Labels) *Builder {
	return &Builder{
		dis:       dis,
		labels:    labels,
		constants: dis.Architecture().Constants(),
	}
}

// Line builds the display line starting at the offset.
func (b *Builder) Line(offset int) Line {
	line := Line{Offset: offset, Length: 1}
	if offset < 0 || offset >= b.dis.Size() {
		return line
	}
	if name, ok := b.labels.For(offset); ok {
		line.Label = name
	}

	value := b.dis.Image().Byte(offset)
	switch b.dis.TagAt(offset) {
	case disasm.Data:
		line.Bytes = fmt.Sprintf("%02x", value)
		line.Text = "db"

	case disasm.Code:
		ins, ok := b.dis.InstructionAt(offset)
		if !ok {
			line.Bytes = fmt.Sprintf("%02x", value)
			line.Text = "<illegal>"
			break
		}
		line.Length = ins.Size
		line.Bytes = b.hexBytes(offset, ins.Size)
		line.Text = b.FormatInstruction(offset, ins)

	default:
		line.Bytes = fmt.Sprintf("%02x", value)
		line.Text = "??"
	}
	return line
}

// Render returns up to count lines starting at the offset.
func (b *Builder) Render(offset, count int) []Line {
	lines := make([]Line, 0, count)
	for len(lines) < count && offset < b.dis.Size() {
		line := b.Line(offset)
		lines = append(lines, line)
		offset += line.Length
	}
	return lines
}

// FormatInstruction renders the instruction as a listing line, the operands
// start at a fixed column.
func (b *Builder) FormatInstruction(origin int, ins arch.Instruction) string {
	operands := b.FormatOperands(origin, ins)
	if operands == "" {
		return ins.Name
	}

	name := ins.Name
	if len(name) < operandColumn {
		name += strings.Repeat(" ", operandColumn-len(name))
	} else {
		name += " "
	}
	return name + operands
}

// FormatOperands renders the operand list of the instruction.
func (b *Builder) FormatOperands(origin int, ins arch.Instruction) string {
	if len(ins.Operands) == 0 {
		return ""
	}
	operands := make([]string, 0, len(ins.Operands))
	for _, operand := range ins.Operands {
		operands = append(operands, b.FormatOperand(origin, operand))
	}
	return strings.Join(operands, ", ")
}

// FormatOperand renders a single operand. Address and displacement operands
// are resolved from the origin offset so that known locations show their
// label.
func (b *Builder) FormatOperand(origin int, operand arch.Operand) string {
	switch operand.Kind {
	case arch.OperandImmediate8:
		return fmt.Sprintf("%02x", operand.Value)
	case arch.OperandImmediate16:
		return fmt.Sprintf("%04x", operand.Value)
	case arch.OperandDisplacement:
		return b.formatResolved(b.dis.Resolve(arch.Relative(operand.Displacement), origin))
	case arch.OperandAddress:
		return b.formatResolved(b.dis.Resolve(operand.Address, origin))
	case arch.OperandIndirectRegister:
		return "(" + operand.Register + ")"
	case arch.OperandSpecial:
		return operand.Text
	default:
		return operand.Register
	}
}

func (b *Builder) formatResolved(resolved arch.Resolved) string {
	switch resolved.Kind() {
	case arch.ResolvedPhysical:
		offset, _ := resolved.ImageOffset()
		if name, ok := b.labels.For(offset); ok {
			return name
		}
		return fmt.Sprintf("(%06x)", offset)

	case arch.ResolvedUnknownBank:
		return fmt.Sprintf("(??:%04x)", resolved.Address())

	default:
		address := resolved.Address()
		if name, ok := b.constants[address]; ok {
			return "(" + name + ")"
		}
		return fmt.Sprintf("(SYS:%04x)", address)
	}
}

func (b *Builder) hexBytes(offset, size int) string {
	var sb strings.Builder
	for index := range size {
		if index > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b.dis.Image().Byte(offset+index))
	}
	return sb.String()
}
