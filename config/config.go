// Package config stores small settings in byte-addressed nonvolatile
// memory, typically an EEPROM or an emulated EEPROM page in flash.
//
// Every value is prefixed with a one byte presence marker so that reads
// from memory that has never been written return a caller-supplied default
// instead of garbage. Erased memory reads as 0xff, the marker is set to 0
// on the first write. Callers lay out their own address map; a value at
// address a occupies a (the marker) through a+size.
package config

import "math"

// Device is the minimal interface to the backing memory.
type Device interface {
	ReadByte(address int) byte
	WriteByte(address int, value byte)
}

const unwritten = 0xff

// Sizes of a stored value including its presence marker, for laying out
// address maps.
const (
	ByteSize    = 2
	Uint16Size  = 3
	Int32Size   = 5
	Float32Size = 5
)

// Store reads and writes marked values on a Device.
type Store struct {
	dev Device
}

// NewStore returns a Store backed by dev.
func NewStore(dev Device) *Store {
	return &Store{dev: dev}
}

// WriteByte stores value at address.
func (s *Store) WriteByte(address int, value uint8) {
	s.write(address, []byte{value})
}

// ReadByte returns the value at address, or def if it was never written.
func (s *Store) ReadByte(address int, def uint8) uint8 {
	var buf [1]byte
	if !s.read(address, buf[:]) {
		return def
	}
	return buf[0]
}

// WriteUint16 stores value at address, little-endian.
func (s *Store) WriteUint16(address int, value uint16) {
	s.write(address, []byte{byte(value), byte(value >> 8)})
}

// ReadUint16 returns the value at address, or def if it was never written.
func (s *Store) ReadUint16(address int, def uint16) uint16 {
	var buf [2]byte
	if !s.read(address, buf[:]) {
		return def
	}
	return uint16(buf[0]) | uint16(buf[1])<<8
}

// WriteInt32 stores value at address, little-endian.
func (s *Store) WriteInt32(address int, value int32) {
	v := uint32(value)
	s.write(address, []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// ReadInt32 returns the value at address, or def if it was never written.
func (s *Store) ReadInt32(address int, def int32) int32 {
	var buf [4]byte
	if !s.read(address, buf[:]) {
		return def
	}
	return int32(uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24)
}

// WriteFloat32 stores value at address, little-endian IEEE 754.
func (s *Store) WriteFloat32(address int, value float32) {
	s.WriteInt32(address, int32(math.Float32bits(value)))
}

// ReadFloat32 returns the value at address, or def if it was never written.
func (s *Store) ReadFloat32(address int, def float32) float32 {
	var buf [4]byte
	if !s.read(address, buf[:]) {
		return def
	}
	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return math.Float32frombits(bits)
}

func (s *Store) write(address int, payload []byte) {
	if s.dev.ReadByte(address) == unwritten {
		s.dev.WriteByte(address, 0)
	}
	for i, b := range payload {
		s.dev.WriteByte(address+1+i, b)
	}
}

func (s *Store) read(address int, payload []byte) bool {
	if s.dev.ReadByte(address) == unwritten {
		return false
	}
	for i := range payload {
		payload[i] = s.dev.ReadByte(address + 1 + i)
	}
	return true
}

// Memory is an in-RAM Device for tests and the simulator. It reads as
// erased (0xff) until written, like real EEPROM.
type Memory struct {
	data map[int]byte
}

// NewMemory returns an erased Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[int]byte)}
}

func (m *Memory) ReadByte(address int) byte {
	if b, ok := m.data[address]; ok {
		return b
	}
	return unwritten
}

func (m *Memory) WriteByte(address int, value byte) {
	m.data[address] = value
}
