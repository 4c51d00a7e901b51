package util

// AlignUp 把 x 向上取整到 a 的倍数，a 必须是 2 的幂。
func AlignUp(x, a uint64) uint64 {
	return (x + a - 1) &^ (a - 1)
}

// IsAligned 判断 x 是否落在 a 的倍数上，a 必须是 2 的幂。
func IsAligned(x, a uint64) bool {
	return x&(a-1) == 0
}
