package heap

import (
	"math/bits"

	"github.com/go-kit/log/level"

	"heap_master/consts"
	"heap_master/util"
)

// Alloc 指针碰撞分配 size 字节，返回负载偏移。
// 负载落在 Align 边界上，块头紧贴负载之前；失败时 cursor 不动。
func (r *Region) Alloc(size uint64) (off uint64, ok bool) {
	if size == 0 || r.data == nil {
		return 0, false
	}
	payload := util.AlignUp(r.cursor+consts.HeaderSize, consts.Align)
	end := uint64(len(r.data))
	if payload > end || size > end-payload {
		level.Debug(r.logger).Log("msg", "alloc failed", "size", size, "remaining", end-r.cursor)
		return 0, false
	}
	writeHeader(r.data, payload-consts.HeaderSize, size)
	r.cursor = payload + size
	r.allocs++
	return payload, true
}

// AllocZeroed 分配 count*elemSize 字节并整块清零，乘法溢出按失败处理。
func (r *Region) AllocZeroed(count, elemSize uint64) (off uint64, ok bool) {
	hi, total := bits.Mul64(count, elemSize)
	if hi != 0 {
		level.Debug(r.logger).Log("msg", "zeroed alloc overflow", "count", count, "elem_size", elemSize)
		return 0, false
	}
	off, ok = r.Alloc(total)
	if !ok {
		return 0, false
	}
	clear(r.data[off : off+total])
	return off, true
}

// Free 记录一次释放但不回收空间：块永不重用，cursor 永不回退。
func (r *Region) Free(off uint64) {
	r.frees++
	level.Debug(r.logger).Log("msg", "free", "off", off)
}

// Resize 调整 off 处块的大小。缩小或不变时原块原样返回且块头不更新；
// 增大时分配新块并复制旧负载；新块分配失败时旧块保持完好。
func (r *Region) Resize(off, size uint64) (uint64, bool) {
	old, ok := r.BlockSize(off)
	if !ok {
		return 0, false
	}
	if size <= old {
		return off, true
	}
	newOff, ok := r.Alloc(size)
	if !ok {
		return 0, false
	}
	copy(r.data[newOff:newOff+old], r.data[off:off+old])
	r.Free(off)
	level.Debug(r.logger).Log("msg", "block moved", "from", off, "to", newOff, "old_size", old, "new_size", size)
	return newOff, true
}

// BlockSize 读取 off 处块头记录的负载长度；off 不是合法负载偏移时返回 false。
func (r *Region) BlockSize(off uint64) (uint64, bool) {
	if r.data == nil || off < consts.HeaderSize || off >= uint64(len(r.data)) {
		return 0, false
	}
	size := readHeader(r.data, off-consts.HeaderSize)
	if size > uint64(len(r.data))-off {
		return 0, false
	}
	return size, true
}
