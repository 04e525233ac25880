//go:build ra4m1

package main

import (
	"runtime/volatile"
	"unsafe"
)

// hwBus maps the core RegisterBus directly onto memory-mapped registers.
// All addresses come from the shared register map; nothing here knows
// about the switch protocol.
type hwBus struct{}

func (hwBus) Read8(addr uint32) uint8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(addr))).Get()
}

func (hwBus) Write8(addr uint32, value uint8) {
	(*volatile.Register8)(unsafe.Pointer(uintptr(addr))).Set(value)
}

func (hwBus) Read16(addr uint32) uint16 {
	return (*volatile.Register16)(unsafe.Pointer(uintptr(addr))).Get()
}

func (hwBus) Write16(addr uint32, value uint16) {
	(*volatile.Register16)(unsafe.Pointer(uintptr(addr))).Set(value)
}

func (hwBus) Read32(addr uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}

func (hwBus) Write32(addr uint32, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Set(value)
}
