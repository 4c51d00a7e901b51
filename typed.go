package heap_master

import "heap_master/internal/typed"

// New 在进程级区域中分配一个清零的 T，T 不得含指针类数据。
// 返回的指针对 GC 不可见，生命周期与区域相同。
func New[T any]() (*T, error) {
	ensureInit()
	return typed.New[T](std)
}

// MakeSlice 在进程级区域中分配 n 个清零的 T，返回切片视图。
func MakeSlice[T any](n int) ([]T, error) {
	ensureInit()
	return typed.MakeSlice[T](std, n)
}
