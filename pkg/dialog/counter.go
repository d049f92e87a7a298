package dialog

import "sync/atomic"

// counter is a monotone int64 safe under concurrent Calls, per §5
// "Shared resources": the process-wide dialog counter is incremented on
// create and decremented on stop from whichever Call's context is
// running at the time.
type counter struct {
	v int64
}

func (c *counter) inc()      { atomic.AddInt64(&c.v, 1) }
func (c *counter) dec()      { atomic.AddInt64(&c.v, -1) }
func (c *counter) get() int64 { return atomic.LoadInt64(&c.v) }
