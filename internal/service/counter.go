package service

import "sync/atomic"

// CounterService holds a process-wide integer. Increment is atomic; Set is a
// plain store, so concurrent Set calls resolve last writer wins. Values wrap
// on int32 overflow.
type CounterService struct {
	value atomic.Int32
}

func NewCounterService() *CounterService {
	return &CounterService{}
}

func (s *CounterService) Get() int32 {
	return s.value.Load()
}

func (s *CounterService) Increment() int32 {
	return s.value.Add(1)
}

func (s *CounterService) Set(value int32) int32 {
	s.value.Store(value)
	return value
}
