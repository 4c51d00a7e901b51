// heap_master 是 malloc/calloc/realloc/free 的用户态替身：进程启动后第一次
// 分配时一次性预留一大块匿名地址空间，此后所有分配只靠指针碰撞向前推进，
// Free 是刻意的空操作，空间永不回收、块永不复用。
//
// 布局契约：每个块由 8 字节块头加负载组成，块头紧贴负载之前，小端存放
// 负载长度；负载地址保证 16 字节对齐，块头本身可以不对齐。Realloc 缩小
// 或等大时原地返回且块头不更新，增大时分配新块并搬运旧负载。
//
// 仅支持单线程调用方：内部没有锁也没有原子操作，并发调用会在 cursor
// 与块头写入上竞争。
//
// 区域大小默认 2GB，可在首次分配前用环境变量 HEAP_MASTER_REGION_SIZE
// 覆盖（如 "64MB"）。预留失败无法降级，直接 panic。
package heap_master
