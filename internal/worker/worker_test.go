package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolTrySubmit(t *testing.T) {
	p := NewPool(1)
	done := false
	require.True(t, p.TrySubmit(func() { done = true }))
	p.Stop()
	require.True(t, done)
}

func TestPoolTrySubmitFull(t *testing.T) {
	p := NewPool(1)
	block := make(chan struct{})
	// 佔住唯一的 worker
	p.Submit(func() { <-block })

	// 填滿佇列後 TrySubmit 應回傳 false 而非阻塞
	for p.TrySubmit(func() {}) {
	}
	require.False(t, p.TrySubmit(func() {}))

	close(block)
	p.Stop()
}
