package arch

// LogicalAddress is an address as encoded in an instruction, before bank
// resolution. It is either an absolute bus address or a displacement relative
// to the instruction following the current one.
type LogicalAddress struct {
	relative     bool
	address      uint16
	displacement int8
}

// Absolute returns a logical address for an absolute bus address.
func Absolute(address uint16) LogicalAddress {
	return LogicalAddress{address: address}
}

// Relative returns a logical address for a signed displacement.
func Relative(displacement int8) LogicalAddress {
	return LogicalAddress{relative: true, displacement: displacement}
}

// Absolute returns the absolute bus address.
func (l LogicalAddress) Absolute() (uint16, bool) {
	return l.address, !l.relative
}

// Displacement returns the signed displacement.
func (l LogicalAddress) Displacement() (int8, bool) {
	return l.displacement, l.relative
}

// ResolveKind classifies the result of an address resolution.
type ResolveKind uint8

const (
	// ResolvedPhysical is a concrete image offset.
	ResolvedPhysical ResolveKind = iota
	// ResolvedUnknownBank is an address in the switchable window that cannot
	// be mapped without knowing the active bank.
	ResolvedUnknownBank
	// ResolvedSystem is an address outside the ROM content, like RAM or
	// hardware registers.
	ResolvedSystem
)

// Resolved is the result of resolving a logical address. Only the physical
// kind maps to image content, the other kinds carry the unmapped address so
// that callers can degrade gracefully instead of guessing an offset.
type Resolved struct {
	kind    ResolveKind
	offset  int
	address uint16
}

// Physical returns a resolved address for a concrete image offset.
func Physical(offset int) Resolved {
	return Resolved{kind: ResolvedPhysical, offset: offset}
}

// UnknownBank returns a resolved address for an unmappable switchable window
// address, carrying the offset within the bank.
func UnknownBank(address uint16) Resolved {
	return Resolved{kind: ResolvedUnknownBank, address: address}
}

// System returns a resolved address for a bus address outside the ROM.
func System(address uint16) Resolved {
	return Resolved{kind: ResolvedSystem, address: address}
}

// Kind returns the resolution kind.
func (r Resolved) Kind() ResolveKind {
	return r.kind
}

// ImageOffset returns the image offset of a physical resolution.
func (r Resolved) ImageOffset() (int, bool) {
	return r.offset, r.kind == ResolvedPhysical
}

// Address returns the bank relative or bus address of a non physical
// resolution.
func (r Resolved) Address() uint16 {
	return r.address
}
