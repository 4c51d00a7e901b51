//go:build unix

package mmap

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// Reserve 预留 size 字节的匿名私有映射，内容按零初始化，不关联任何文件。
func Reserve(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrap(err, "mmap anonymous region")
	}
	return data, nil
}

// Release 解除映射。
func Release(data []byte) error {
	return unix.Munmap(data)
}
