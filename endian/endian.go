// Package endian converts fixed width words between a declared byte order
// and the byte order of the machine running the program.
package endian

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

// Network is the byte order used on the wire by default.
const Network = BigEndian

// Machine is the byte order of the host.
var Machine = machine()

func machine() Endianness {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if b[0] == 0x01 {
		return BigEndian
	}
	return LittleEndian
}

func ParseEndianness(v string) (Endianness, error) {
	e, ok := map[string]Endianness{
		"little":  LittleEndian,
		"le":      LittleEndian,
		"big":     BigEndian,
		"be":      BigEndian,
		"network": Network,
		"machine": Machine,
	}[v]
	if ok {
		return e, nil
	}
	return 0, fmt.Errorf("unrecognized endianness %q", v)
}

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("<endianness %d>", int(e))
	}
}

func (e Endianness) MarshalText() ([]byte, error) {
	switch e {
	case LittleEndian, BigEndian:
		return []byte(e.String()), nil
	}
	return nil, fmt.Errorf("invalid endianness %d", int(e))
}

func (e *Endianness) UnmarshalText(d []byte) error {
	pe, err := ParseEndianness(string(d))
	if err != nil {
		return err
	}
	*e = pe
	return nil
}

// ByteOrder returns the encoding/binary order matching e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func ConvertGivenToMachine16(v uint16, given Endianness) uint16 {
	if given == Machine {
		return v
	}
	return bits.ReverseBytes16(v)
}

func ConvertGivenToMachine32(v uint32, given Endianness) uint32 {
	if given == Machine {
		return v
	}
	return bits.ReverseBytes32(v)
}

func ConvertGivenToMachine64(v uint64, given Endianness) uint64 {
	if given == Machine {
		return v
	}
	return bits.ReverseBytes64(v)
}

// The conversion is symmetric; the MachineToGiven names exist so call sites
// read in the direction the data flows.

func ConvertMachineToGiven16(v uint16, given Endianness) uint16 {
	return ConvertGivenToMachine16(v, given)
}

func ConvertMachineToGiven32(v uint32, given Endianness) uint32 {
	return ConvertGivenToMachine32(v, given)
}

func ConvertMachineToGiven64(v uint64, given Endianness) uint64 {
	return ConvertGivenToMachine64(v, given)
}
