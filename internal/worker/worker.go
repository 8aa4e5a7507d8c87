// Package worker 提供固定大小的背景工作池，供非關鍵的旁路寫入使用
package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a fixed-size worker pool.
type Pool interface {
	// Submit 阻塞直到有 worker 可接手
	Submit(Task)
	// TrySubmit 佇列滿時直接丟棄並回傳 false，適合可容忍遺失的工作
	TrySubmit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queueFactor)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

// queueFactor 每個 worker 的緩衝量
const queueFactor = 8

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) TrySubmit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
