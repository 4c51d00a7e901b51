package heap

import (
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"heap_master/internal/errs"
	"heap_master/internal/mmap"
)

// Region 单块匿名预留区：cursor 只前进不回退，块永不回收复用。
// 仅支持单线程调用方，内部不加锁，并发调用会在 cursor 与块头写入上竞争。
type Region struct {
	data   []byte // 匿名映射，len 即区域大小
	cursor uint64 // 下一次分配从这里向后找对齐位
	allocs uint64
	frees  uint64
	logger log.Logger
}

// New 预留 size 字节的匿名区域。logger 为 nil 时丢弃诊断输出。
func New(size uint64, logger log.Logger) (*Region, error) {
	if size == 0 {
		return nil, errs.ErrBadArgument
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	data, err := mmap.Reserve(int(size))
	if err != nil {
		return nil, err
	}
	level.Info(logger).Log("msg", "region reserved", "size", humanize.IBytes(uint64(len(data))))
	return &Region{data: data, logger: logger}, nil
}

// Size 返回区域总大小。
func (r *Region) Size() uint64 { return uint64(len(r.data)) }

// Remaining 返回 cursor 之后剩余的字节数。
func (r *Region) Remaining() uint64 { return uint64(len(r.data)) - r.cursor }

// Cursor 返回当前 bump 偏移（供测试断言）。
func (r *Region) Cursor() uint64 { return r.cursor }

// Ptr 返回偏移 off 处的原始指针，off 须来自本区域的分配。
func (r *Region) Ptr(off uint64) unsafe.Pointer { return unsafe.Pointer(&r.data[off]) }

// Offset 把指针换算回区域内偏移；指针不落在区域内时返回 false。
func (r *Region) Offset(p unsafe.Pointer) (uint64, bool) {
	if r.data == nil || p == nil {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(&r.data[0]))
	addr := uintptr(p)
	if addr < base || addr >= base+uintptr(len(r.data)) {
		return 0, false
	}
	return uint64(addr - base), true
}

// Bytes 返回 [off, off+n) 的负载视图（供调用方读写），Close 后勿用。
func (r *Region) Bytes(off, n uint64) []byte { return r.data[off : off+n] }

// SetLogger 替换诊断输出，传 nil 恢复为丢弃。
func (r *Region) SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	r.logger = l
}

// Stats 区域使用快照。
type Stats struct {
	RegionSize uint64 // 区域总大小
	Used       uint64 // cursor 已推进的字节数，含块头与对齐填充
	Remaining  uint64 // 区域尾部剩余
	Allocs     uint64 // 成功分配次数
	Frees      uint64 // Free 调用次数
}

// ReadStats 返回当前使用快照。
func (r *Region) ReadStats() Stats {
	return Stats{
		RegionSize: uint64(len(r.data)),
		Used:       r.cursor,
		Remaining:  uint64(len(r.data)) - r.cursor,
		Allocs:     r.allocs,
		Frees:      r.frees,
	}
}

// Close 解除映射，之后所有分配失败。重复 Close 返回 nil。
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	if err := mmap.Release(r.data); err != nil {
		return err
	}
	r.data = nil
	r.cursor = 0
	return nil
}
