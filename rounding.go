package rvcodec

// RoundingMode is the FP instruction family's 3-bit rm field. Values
// 0b101 and 0b110 are reserved and rejected by the decoder.
type RoundingMode uint8

const (
	RNE     RoundingMode = 0b000
	RTZ     RoundingMode = 0b001
	RDN     RoundingMode = 0b010
	RUP     RoundingMode = 0b011
	RMM     RoundingMode = 0b100
	Dynamic RoundingMode = 0b111
)

var roundingModeNames = map[RoundingMode]string{
	RNE: "rne", RTZ: "rtz", RDN: "rdn", RUP: "rup", RMM: "rmm", Dynamic: "dyn",
}

func (r RoundingMode) String() string {
	if n, ok := roundingModeNames[r]; ok {
		return n
	}
	return "rm(?)"
}

// validRoundingMode reports whether the 3-bit code names a non-reserved
// rounding mode.
func validRoundingMode(bits uint32) (RoundingMode, bool) {
	switch RoundingMode(bits) {
	case RNE, RTZ, RDN, RUP, RMM, Dynamic:
		return RoundingMode(bits), true
	default:
		return 0, false
	}
}
