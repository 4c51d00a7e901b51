package typed

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"

	"heap_master/internal/errs"
)

// Allocator 供 New/MakeSlice 使用的分配接口。
type Allocator interface {
	AllocZeroed(count, elemSize uint64) (off uint64, ok bool)
	Ptr(off uint64) unsafe.Pointer
}

// assertNoPointers 拒绝含指针类数据的 T：区域对 GC 不可见，
// 存进去的 Go 指针会在下一次回收时变成悬垂引用。
func assertNoPointers[T any]() error {
	return typeNoPointers(reflect.TypeFor[T]())
}

func typeNoPointers(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return typeNoPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := typeNoPointers(t.Field(i).Type); err != nil {
				return errors.Wrapf(err, "field %s", t.Field(i).Name)
			}
		}
		return nil
	case reflect.String, reflect.Slice, reflect.Map, reflect.Pointer,
		reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return errors.Wrapf(errs.ErrPointerType, "type %s", t.String())
	default:
		return errors.Wrapf(errs.ErrBadArgument, "unsupported kind %s (%s)", t.Kind(), t.String())
	}
}

// New 在 a 中分配一个清零的 T，T 不得含指针类数据、不得是零大小类型。
func New[T any](a Allocator) (*T, error) {
	if err := assertNoPointers[T](); err != nil {
		return nil, err
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, errors.Wrap(errs.ErrBadArgument, "zero-size type")
	}
	off, ok := a.AllocZeroed(1, size)
	if !ok {
		return nil, errs.ErrNoSpace
	}
	return (*T)(a.Ptr(off)), nil
}

// MakeSlice 在 a 中分配 n 个清零的 T，返回切片视图；n 为 0 时返回 nil。
func MakeSlice[T any](a Allocator, n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrBadArgument, "negative length %d", n)
	}
	if err := assertNoPointers[T](); err != nil {
		return nil, err
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, errors.Wrap(errs.ErrBadArgument, "zero-size type")
	}
	if n == 0 {
		return nil, nil
	}
	off, ok := a.AllocZeroed(uint64(n), size)
	if !ok {
		return nil, errs.ErrNoSpace
	}
	return unsafe.Slice((*T)(a.Ptr(off)), n), nil
}
