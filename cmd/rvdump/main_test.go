package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXLEN(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"rv32", "RV32", true},
		{"RV64", "RV64", true},
		{"32", "RV32", true},
		{"64", "RV64", true},
		{"garbage", "", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			xlen, err := parseXLEN(c.in)
			if !c.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, xlen.String())
		})
	}
}

func TestParseHexWord(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"0x13", 0x13},
		{"0X00000013", 0x13},
		{"13", 0x13},
		{" 0x13 ", 0x13},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseHexWord(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeCommandRendersNop(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"decode", "0x00000013"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "nop")
}

func TestEncodeCommandRoundTripsNop(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"encode", "nop"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "0x00000013")
}

func TestEncodeCommandRejectsUnknownMnemonic(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"encode", "frobnicate", "a0"})
	require.Error(t, root.Execute())
}
