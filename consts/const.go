package consts

import "github.com/c2h5oh/datasize"

// 块布局
const (
	// HeaderSize 块头大小：紧贴负载之前的 8 字节，小端存放负载长度。
	HeaderSize = 8
	// Align 负载对齐：64 位平台上的双机器字。块头本身不保证对齐。
	Align = 16
)

// 区域配置
const (
	// DefaultRegionSize 默认预留的地址空间大小。
	DefaultRegionSize = 2 * datasize.GB
	// EnvRegionSize 区域大小环境变量（如 "64MB"），仅在首次分配前读取。
	EnvRegionSize = "HEAP_MASTER_REGION_SIZE"
)
