package handlers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlackHandler_WaitDrainsClicks(t *testing.T) {
	h := New(nil, nil, "secret")

	release := make(chan struct{})
	var handled atomic.Int32
	for i := 0; i < 3; i++ {
		h.async(func() {
			<-release
			handled.Add(1)
		})
	}

	waited := make(chan struct{})
	go func() {
		h.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while clicks were still being handled")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-waited
	assert.Equal(t, int32(3), handled.Load())
}
