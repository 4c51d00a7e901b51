package heap_master_test

import (
	"errors"
	"testing"
	"unsafe"

	"heap_master"
)

type player struct {
	ID     uint64
	HP, MP uint32
	Score  float64
	Name   [32]byte
}

func TestNewTyped(t *testing.T) {
	p, err := heap_master.New[player]()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.ID != 0 || p.HP != 0 || p.Score != 0 || p.Name != [32]byte{} {
		t.Errorf("fresh object not zeroed: %+v", *p)
	}
	if uintptr(unsafe.Pointer(p))%16 != 0 {
		t.Errorf("%p not 16-aligned", p)
	}
	p.ID, p.HP = 7, 100
	copy(p.Name[:], "bump")
	if p.ID != 7 || p.HP != 100 || string(p.Name[:4]) != "bump" {
		t.Errorf("write-back mismatch: %+v", *p)
	}
	if got := heap_master.UsableSize(unsafe.Pointer(p)); got != int(unsafe.Sizeof(*p)) {
		t.Errorf("UsableSize = %d, want %d", got, unsafe.Sizeof(*p))
	}
}

func TestNewTypedNestedArray(t *testing.T) {
	type matrix struct{ M [4][4]float64 }
	m, err := heap_master.New[matrix]()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.M[3][3] = 1.5
	if m.M[3][3] != 1.5 || m.M[0][0] != 0 {
		t.Errorf("matrix write-back mismatch: %+v", m.M)
	}
}

// 含指针类数据的类型必须被拒绝：区域对 GC 不可见。
func TestNewTypedRejectsPointers(t *testing.T) {
	type bad struct {
		Next *int
	}
	if _, err := heap_master.New[bad](); !errors.Is(err, heap_master.ErrPointerType) {
		t.Errorf("New[bad]: got %v, want ErrPointerType", err)
	}
	type withString struct {
		Name string
	}
	if _, err := heap_master.New[withString](); !errors.Is(err, heap_master.ErrPointerType) {
		t.Errorf("New[withString]: got %v, want ErrPointerType", err)
	}
	if _, err := heap_master.MakeSlice[[]int](3); !errors.Is(err, heap_master.ErrPointerType) {
		t.Errorf("MakeSlice[[]int]: got %v, want ErrPointerType", err)
	}
}

func TestNewTypedZeroSize(t *testing.T) {
	if _, err := heap_master.New[struct{}](); !errors.Is(err, heap_master.ErrBadArgument) {
		t.Errorf("New[struct{}]: got %v, want ErrBadArgument", err)
	}
}

func TestMakeSlice(t *testing.T) {
	s, err := heap_master.MakeSlice[uint32](10)
	if err != nil {
		t.Fatalf("MakeSlice: %v", err)
	}
	if len(s) != 10 || cap(s) != 10 {
		t.Fatalf("len=%d cap=%d, want 10 10", len(s), cap(s))
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, v)
		}
	}
	if uintptr(unsafe.Pointer(&s[0]))%16 != 0 {
		t.Errorf("&s[0] not 16-aligned")
	}
	for i := range s {
		s[i] = uint32(i)
	}
	if s[9] != 9 {
		t.Errorf("s[9] = %d, want 9", s[9])
	}
	if got := heap_master.UsableSize(unsafe.Pointer(&s[0])); got != 40 {
		t.Errorf("UsableSize = %d, want 40", got)
	}
}

func TestMakeSliceEdgeCases(t *testing.T) {
	s, err := heap_master.MakeSlice[uint32](0)
	if err != nil || s != nil {
		t.Errorf("MakeSlice(0): s=%v err=%v, want nil nil", s, err)
	}
	if _, err := heap_master.MakeSlice[uint32](-1); !errors.Is(err, heap_master.ErrBadArgument) {
		t.Errorf("MakeSlice(-1): got %v, want ErrBadArgument", err)
	}
}

func TestMakeSliceOfStructs(t *testing.T) {
	s, err := heap_master.MakeSlice[player](3)
	if err != nil {
		t.Fatalf("MakeSlice: %v", err)
	}
	s[1].ID = 42
	if s[0].ID != 0 || s[1].ID != 42 || s[2].ID != 0 {
		t.Errorf("slice payload mismatch: %d %d %d", s[0].ID, s[1].ID, s[2].ID)
	}
}
