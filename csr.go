package rvcodec

import "fmt"

// Csr is a 12-bit control-and-status register address, 0..=4095.
type Csr uint16

// Named CSRs the codec decodes/encodes. Unlisted addresses are still
// valid Csr values (Zicsr accesses any 12-bit address); these are only
// the ones common enough to render by name rather than hex.
const (
	Fflags Csr = 0x001
	Frm    Csr = 0x002
	Fcsr   Csr = 0x003

	Sstatus Csr = 0x100
	Sie     Csr = 0x104
	Stvec   Csr = 0x105
	Sepc    Csr = 0x141
	Scause  Csr = 0x142
	Stval   Csr = 0x143
	Sip     Csr = 0x144

	Mstatus Csr = 0x300
	Misa    Csr = 0x301
	Mie     Csr = 0x304
	Mtvec   Csr = 0x305
	Mepc    Csr = 0x341
	Mcause  Csr = 0x342
	Mtval   Csr = 0x343
	Mip     Csr = 0x344

	Cycle    Csr = 0xC00
	Time     Csr = 0xC01
	Instret  Csr = 0xC02
	CycleH   Csr = 0xC80
	TimeH    Csr = 0xC81
	InstretH Csr = 0xC82
)

var csrNames = map[Csr]string{
	Fflags: "fflags", Frm: "frm", Fcsr: "fcsr",
	Sstatus: "sstatus", Sie: "sie", Stvec: "stvec", Sepc: "sepc",
	Scause: "scause", Stval: "stval", Sip: "sip",
	Mstatus: "mstatus", Misa: "misa", Mie: "mie", Mtvec: "mtvec",
	Mepc: "mepc", Mcause: "mcause", Mtval: "mtval", Mip: "mip",
	Cycle: "cycle", Time: "time", Instret: "instret",
	CycleH: "cycleh", TimeH: "timeh", InstretH: "instreth",
}

// String renders a known CSR by its conventional name, falling back to
// its raw hex address for anything else.
func (c Csr) String() string {
	if n, ok := csrNames[c]; ok {
		return n
	}
	return fmt.Sprintf("0x%x", uint16(c))
}
