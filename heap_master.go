package heap_master

import (
	"os"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"heap_master/consts"
	"heap_master/internal/errs"
	"heap_master/internal/heap"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrNoSpace     = errs.ErrNoSpace
	ErrBadArgument = errs.ErrBadArgument
	ErrPointerType = errs.ErrPointerType
)

// 进程级单例：任一公开入口首次调用时创建，之后永不销毁。
// 惰性判空初始化，不加锁也不用 sync.Once（调用契约为单线程）。
var (
	std    *heap.Region
	logger log.Logger = log.NewNopLogger()
)

func ensureInit() {
	if std != nil {
		return
	}
	size := uint64(consts.DefaultRegionSize)
	if s := os.Getenv(consts.EnvRegionSize); s != "" {
		if v, err := datasize.ParseString(s); err == nil && v.Bytes() > 0 {
			size = v.Bytes()
		} else {
			level.Warn(logger).Log("msg", "bad region size, using default",
				"value", s, "default", consts.DefaultRegionSize.HumanReadable())
		}
	}
	r, err := heap.New(size, logger)
	if err != nil {
		level.Error(logger).Log("msg", "region reservation failed", "size", size, "err", err)
		panic(errors.Wrap(err, "heap_master: reserve region"))
	}
	std = r
}

// Malloc 分配 size 字节，负载地址 16 字节对齐；size<=0 或空间不足时返回 nil。
func Malloc(size int) unsafe.Pointer {
	ensureInit()
	if size <= 0 {
		return nil
	}
	off, ok := std.Alloc(uint64(size))
	if !ok {
		return nil
	}
	return std.Ptr(off)
}

// Free 释放 ptr 指向的块：刻意的空操作，只留痕不回收。
// nil 与区域之外的指针直接忽略。
func Free(ptr unsafe.Pointer) {
	ensureInit()
	if ptr == nil {
		return
	}
	off, ok := std.Offset(ptr)
	if !ok {
		level.Debug(logger).Log("msg", "free of foreign pointer ignored", "ptr", ptr)
		return
	}
	std.Free(off)
}

// Calloc 分配 count*elemSize 字节并清零；参数非正、乘积溢出或空间不足时返回 nil。
func Calloc(count, elemSize int) unsafe.Pointer {
	ensureInit()
	if count < 0 || elemSize < 0 {
		return nil
	}
	off, ok := std.AllocZeroed(uint64(count), uint64(elemSize))
	if !ok {
		return nil
	}
	return std.Ptr(off)
}

// Realloc 调整块大小：ptr 为 nil 等价 Malloc；size<=0 等价 Free 并返回 nil；
// 缩小或等大时原指针原样返回；增大时迁移到新块并复制旧负载，迁移失败时
// 旧块保持可用并返回 nil。区域之外的指针返回 nil。
func Realloc(ptr unsafe.Pointer, size int) unsafe.Pointer {
	ensureInit()
	if ptr == nil {
		return Malloc(size)
	}
	if size <= 0 {
		Free(ptr)
		return nil
	}
	off, ok := std.Offset(ptr)
	if !ok {
		level.Debug(logger).Log("msg", "realloc of foreign pointer ignored", "ptr", ptr)
		return nil
	}
	newOff, ok := std.Resize(off, uint64(size))
	if !ok {
		return nil
	}
	return std.Ptr(newOff)
}

// UsableSize 返回 ptr 所指块最初记录的负载长度；缩小不改写块头，
// 返回的仍是分配时的值。nil 或区域之外的指针返回 0。
func UsableSize(ptr unsafe.Pointer) int {
	ensureInit()
	if ptr == nil {
		return 0
	}
	off, ok := std.Offset(ptr)
	if !ok {
		return 0
	}
	size, ok := std.BlockSize(off)
	if !ok {
		return 0
	}
	return int(size)
}

// SetLogger 设置诊断输出，传 nil 恢复为丢弃。首次分配之前设置可以看到
// 区域初始化日志。
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logger = l
	if std != nil {
		std.SetLogger(l)
	}
}

func RegionSize() int {
	ensureInit()
	return int(std.Size())
}
