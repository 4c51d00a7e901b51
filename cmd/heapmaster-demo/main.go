package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/alecthomas/kingpin/v2"
	"github.com/c2h5oh/datasize"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"heap_master"
	"heap_master/consts"
)

type Player struct {
	ID   uint64
	HP   uint32
	MP   uint32
	Name [32]byte
}

var (
	regionSize = kingpin.Flag("region-size", "Reserved region size, e.g. 64MB or 2GB.").Default("2GB").String()
	verbose    = kingpin.Flag("verbose", "Print allocator debug traces.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	if _, err := datasize.ParseString(*regionSize); err != nil {
		kingpin.Fatalf("bad --region-size %q: %v", *regionSize, err)
	}
	os.Setenv(consts.EnvRegionSize, *regionSize)

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if !*verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	heap_master.SetLogger(logger)

	// malloc 三块
	x := heap_master.Malloc(24)
	y := heap_master.Malloc(19)
	z := heap_master.Malloc(32)
	fmt.Printf("malloc: x=%p y=%p z=%p\n", x, y, z)

	// 缩小：原地返回
	x2 := heap_master.Realloc(x, 20)
	fmt.Printf("realloc shrink: %p -> %p (same=%v)\n", x, x2, x2 == x)

	// 增大：搬家并带走旧数据
	yb := unsafe.Slice((*byte)(y), 19)
	yb[0], yb[1] = 'a', 'b'
	y2 := heap_master.Realloc(y, 33)
	y2b := unsafe.Slice((*byte)(y2), 33)
	fmt.Printf("realloc grow: %p -> %p (moved=%v) data=%c%c\n", y, y2, y2 != y, y2b[0], y2b[1])

	// 等大：原地返回
	z2 := heap_master.Realloc(z, 32)
	fmt.Printf("realloc same: %p -> %p (same=%v)\n", z, z2, z2 == z)

	// calloc：整块清零
	c := heap_master.Calloc(10, 4)
	sum := 0
	for _, b := range unsafe.Slice((*byte)(c), 40) {
		sum += int(b)
	}
	fmt.Printf("calloc: %p zero-sum=%d\n", c, sum)

	heap_master.Free(x)
	heap_master.Free(y2)
	heap_master.Free(z)

	// 类型化分配：对象直接落在区域里
	p, err := heap_master.New[Player]()
	if err != nil {
		kingpin.Fatalf("new player: %v", err)
	}
	p.ID, p.HP, p.MP = 7, 100, 50
	copy(p.Name[:], "bump")
	fmt.Printf("player: id=%d hp=%d mp=%d name=%s\n", p.ID, p.HP, p.MP, p.Name[:4])

	scores, err := heap_master.MakeSlice[float64](8)
	if err != nil {
		kingpin.Fatalf("make slice: %v", err)
	}
	for i := range scores {
		scores[i] = float64(i) * 1.5
	}
	fmt.Printf("scores: %v\n", scores)

	s := heap_master.ReadStats()
	fmt.Printf("stats: region=%s used=%s remaining=%s allocs=%d frees=%d\n",
		humanize.IBytes(s.RegionSize), humanize.IBytes(s.Used), humanize.IBytes(s.Remaining),
		s.Allocs, s.Frees)
}
