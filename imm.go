package rvcodec

// Imm carries an already-sign-extended 64-bit immediate: the value
// that would be written to an XLEN-wide register, never the raw
// scattered bit field. The U-type stores the already-shifted (x4096)
// value, sign-extended into bits 63..32 for both XLENs.
type Imm int64

// ImmZero is the zero immediate, used by several pseudo-instruction
// forms (nop, ret, C.JR's implicit offset).
const ImmZero Imm = 0

// NewImm wraps an already-semantic signed value.
func NewImm(v int64) Imm { return Imm(v) }

// NewUImm wraps an already-semantic unsigned value, whose top bit is
// not treated as a sign.
func NewUImm(v uint64) Imm { return Imm(int64(v)) }

// AsI64 returns the immediate as a signed 64-bit value.
func (i Imm) AsI64() int64 { return int64(i) }

// AsU64 returns the immediate's bit pattern reinterpreted unsigned.
func (i Imm) AsU64() uint64 { return uint64(i) }

// AsI32 returns the low 32 bits, reinterpreted signed.
func (i Imm) AsI32() int32 { return int32(i) }

// AsU32 returns the low 32 bits of AsU64.
func (i Imm) AsU32() uint32 { return uint32(i) }
