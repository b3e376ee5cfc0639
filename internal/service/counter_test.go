package service_test

import (
	"math"
	"sync"
	"testing"

	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestCounterService(t *testing.T) {
	c := service.NewCounterService()
	assert.Equal(t, int32(0), c.Get())

	for i := 1; i <= 5; i++ {
		assert.Equal(t, int32(i), c.Increment())
	}
	assert.Equal(t, int32(5), c.Get())

	assert.Equal(t, int32(42), c.Set(42))
	assert.Equal(t, int32(42), c.Get())

	assert.Equal(t, int32(-5), c.Set(-5))
	assert.Equal(t, int32(-4), c.Increment())
}

func TestCounterService_ConcurrentIncrement(t *testing.T) {
	const workers, perWorker = 16, 1000

	c := service.NewCounterService()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(workers*perWorker), c.Get())
}

func TestCounterService_Wraps(t *testing.T) {
	c := service.NewCounterService()
	c.Set(math.MaxInt32)

	assert.Equal(t, int32(math.MinInt32), c.Increment())
}

func TestGreeterService(t *testing.T) {
	g := service.NewGreeterService()

	assert.Equal(t, "Hello, World!", g.Hello(""))
	assert.Equal(t, "Hello, Alice!", g.Hello("Alice"))
	assert.Equal(t, "pong", g.Ping())
}
