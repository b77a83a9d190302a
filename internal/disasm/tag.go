package disasm

// Tag classifies an image offset.
type Tag uint8

const (
	// Unknown offsets have not been classified yet.
	Unknown Tag = iota
	// Data offsets hold raw bytes.
	Data
	// Code offsets start or continue an instruction.
	Code
)

func (t Tag) String() string {
	switch t {
	case Data:
		return "data"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}
