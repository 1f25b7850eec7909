// Package oracle assembles a single instruction with an external
// RISC-V toolchain and reports the resulting machine code, used by
// rvcodec's test suite to check agreement with a reference assembler
// (spec.md §8 P3). It has no state to keep synchronized — one process
// per call, unlike a PTY-driven simulator session.
package oracle

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Clang wraps the clang binary configured as a cross-assembler for a
// given target triple, e.g. "riscv32-unknown-elf" with march
// "rv32ima_zihintpause".
type Clang struct {
	Path   string
	Target string
	March  string
}

// NewClang returns a Clang oracle for the given target/march, looking
// up "clang" on PATH. Returns an error if no such binary is found, so
// callers can skip oracle-dependent tests in environments without it.
func NewClang(target, march string) (*Clang, error) {
	path, err := exec.LookPath("clang")
	if err != nil {
		return nil, fmt.Errorf("oracle: clang not found: %w", err)
	}
	return &Clang{Path: path, Target: target, March: march}, nil
}

// AssembleOne assembles a single line of assembler text and returns
// the raw little-endian bytes of the resulting .text section, via a
// one-shot clang invocation through a temp directory (no PTY, no
// persistent process).
func (c *Clang) AssembleOne(asmLine string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "rvcodec-oracle-*")
	if err != nil {
		return nil, fmt.Errorf("oracle: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "in.s")
	obj := filepath.Join(dir, "out.o")
	if err := os.WriteFile(src, []byte(asmLine+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("oracle: write source: %w", err)
	}

	cmd := exec.Command(c.Path,
		"--target="+c.Target,
		"-march="+c.March,
		"-c", "-o", obj, src,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("oracle: clang assemble %q: %w: %s", asmLine, err, stderr.String())
	}

	return extractText(obj)
}

// extractText pulls the raw bytes of the .text section out of an ELF
// object file produced by clang, via objdump -s (no ELF parsing
// library in the pack covers this narrow a need).
func extractText(objPath string) ([]byte, error) {
	objdump, err := exec.LookPath("llvm-objdump")
	if err != nil {
		objdump, err = exec.LookPath("objdump")
		if err != nil {
			return nil, fmt.Errorf("oracle: no objdump found: %w", err)
		}
	}
	out, err := exec.Command(objdump, "-s", "--section=.text", objPath).Output()
	if err != nil {
		return nil, fmt.Errorf("oracle: objdump: %w", err)
	}
	return parseObjdumpHex(out)
}

// parseObjdumpHex parses "objdump -s" output, pulling the hex payload
// columns out of each "Contents of section" data line.
func parseObjdumpHex(out []byte) ([]byte, error) {
	var result []byte
	for _, line := range bytes.Split(out, []byte("\n")) {
		fields := bytes.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// First field is the offset (hex, trailing nothing useful);
		// skip lines that aren't "<offset> <hex> <hex> ...".
		if _, err := fmt.Sscanf(string(fields[0]), "%x", new(uint64)); err != nil {
			continue
		}
		for _, f := range fields[1:] {
			if len(f) == 8 && isHex(f) {
				var b [4]byte
				for i := 0; i < 4; i++ {
					var v uint64
					fmt.Sscanf(string(f[i*2:i*2+2]), "%x", &v)
					b[i] = byte(v)
				}
				result = append(result, b[:]...)
			}
		}
	}
	return result, nil
}

func isHex(b []byte) bool {
	for _, c := range b {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
