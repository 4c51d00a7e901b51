//go:build windows

package mmap

import "errors"

var ErrNotSupported = errors.New("mmap not supported on windows")

func Reserve(size int) ([]byte, error) {
	return nil, ErrNotSupported
}

func Release(data []byte) error {
	return nil
}
