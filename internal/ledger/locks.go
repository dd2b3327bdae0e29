package ledger

import (
	"sync"
)

// projectLocks 项目级互斥锁
// 同一项目的所有变更操作串行化，避免并发读改写丢失贡献；
// 不同项目之间互不阻塞
type projectLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[int64]*sync.Mutex)}
}

// Get 获取指定项目的锁，首次访问时创建
func (p *projectLocks) Get(projectId int64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.locks[projectId]
	if !ok {
		l = &sync.Mutex{}
		p.locks[projectId] = l
	}
	return l
}
