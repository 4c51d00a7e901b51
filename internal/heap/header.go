package heap

import (
	"encoding/binary"

	"heap_master/consts"
)

// writeHeader 在 data[off:] 写入块头：负载长度，小端 8 字节。
func writeHeader(data []byte, off, size uint64) {
	binary.LittleEndian.PutUint64(data[off:off+consts.HeaderSize], size)
}

// readHeader 读出 data[off:] 处块头记录的负载长度。
func readHeader(data []byte, off uint64) uint64 {
	return binary.LittleEndian.Uint64(data[off : off+consts.HeaderSize])
}
