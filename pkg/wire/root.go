// Package wire holds the FlatBuffers schema of the deployment descriptor,
// its generated accessors and the structural verifier that must pass before
// any accessor touches externally supplied bytes.
package wire

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// ComConfigurationIdentifier is the file identifier declared in mw_com_config.fbs.
const ComConfigurationIdentifier = "MWCC"

const fileIdentifierLength = 4

// RootOffset returns the offset of the root table, or false if the root
// offset does not point inside buf.
func RootOffset(buf []byte) (flatbuffers.UOffsetT, bool) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return 0, false
	}
	o := flatbuffers.GetUOffsetT(buf)
	if o == 0 || uint64(o) >= uint64(len(buf)) {
		return 0, false
	}
	return o, true
}

// HasQm reports whether the qm allow-list is present, including when empty.
func (rcv *AllowedConsumer) HasQm() bool {
	return rcv._tab.Offset(4) != 0
}

// HasB reports whether the ASIL-B allow-list is present, including when empty.
func (rcv *AllowedConsumer) HasB() bool {
	return rcv._tab.Offset(6) != 0
}

// HasQm reports whether the qm allow-list is present, including when empty.
func (rcv *AllowedProvider) HasQm() bool {
	return rcv._tab.Offset(4) != 0
}

// HasB reports whether the ASIL-B allow-list is present, including when empty.
func (rcv *AllowedProvider) HasB() bool {
	return rcv._tab.Offset(6) != 0
}

// HasShmSizeCalcMode reports whether the buffer encodes a calculation mode.
func (rcv *Global) HasShmSizeCalcMode() bool {
	return rcv._tab.Offset(10) != 0
}
