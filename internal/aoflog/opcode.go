package aoflog

// Opcode is the single byte that leads every AOF record. Field layouts
// are fixed per opcode; all multi-byte integers are little-endian.
type Opcode byte

const (
	OpSet        Opcode = 1
	OpRemove     Opcode = 2
	OpClear      Opcode = 3
	OpExpire     Opcode = 4
	OpHSet       Opcode = 5
	OpLPush      Opcode = 6
	OpSAdd       Opcode = 7
	OpZAdd       Opcode = 8
	OpXAdd       Opcode = 9
	OpSetBinary  Opcode = 10
	OpRemoveBinary Opcode = 11
)
