package abi

import "unsafe"

// Animation mirrors aiAnimation. Channel records are not mirrored.
type Animation struct {
	Name           String
	Duration       float64
	TicksPerSecond float64

	NumChannels uint32
	Channels    unsafe.Pointer

	NumMeshChannels uint32
	MeshChannels    unsafe.Pointer

	NumMorphMeshChannels uint32
	MorphMeshChannels    unsafe.Pointer
}
