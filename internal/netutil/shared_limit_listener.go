package netutil

import (
	"net"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Limiter is a pool of connection slots shared by every listener of the
// daemon, so -max-conns bounds the HTTP, proxy and PROXYv2 listeners together.
type Limiter struct {
	slots      chan struct{}
	concurrent prometheus.Gauge
	waiting    prometheus.Gauge
}

// NewLimiterWithMetrics creates a Limiter allowing n concurrent connections.
// maxConns is set to n, concurrent tracks the slots in use and waiting the Accept
// calls blocked on a free slot.
func NewLimiterWithMetrics(n int, maxConns, concurrent, waiting prometheus.Gauge) *Limiter {
	maxConns.Set(float64(n))

	return &Limiter{
		slots:      make(chan struct{}, n),
		concurrent: concurrent,
		waiting:    waiting,
	}
}

// acquire blocks until a slot is free or cancel is closed
func (l *Limiter) acquire(cancel <-chan struct{}) bool {
	l.waiting.Inc()
	defer l.waiting.Dec()

	select {
	case l.slots <- struct{}{}:
		l.concurrent.Inc()
		return true
	case <-cancel:
		return false
	}
}

func (l *Limiter) release() {
	<-l.slots
	l.concurrent.Dec()
}

// SharedLimitListener returns a Listener that only accepts a connection once
// limiter has a free slot. The slot is held until the connection is closed.
func SharedLimitListener(listener net.Listener, limiter *Limiter) net.Listener {
	return &limitListener{
		Listener: listener,
		limiter:  limiter,
		closed:   make(chan struct{}),
	}
}

type limitListener struct {
	net.Listener
	limiter   *Limiter
	closeOnce sync.Once
	closed    chan struct{}
}

func (l *limitListener) Accept() (net.Conn, error) {
	if !l.limiter.acquire(l.closed) {
		return nil, net.ErrClosed
	}

	c, err := l.Listener.Accept()
	if err != nil {
		l.limiter.release()
		return nil, err
	}

	return &limitConn{Conn: c, release: l.limiter.release}, nil
}

func (l *limitListener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })

	return l.Listener.Close()
}

type limitConn struct {
	net.Conn
	once    sync.Once
	release func()
}

func (c *limitConn) Close() error {
	err := c.Conn.Close()
	c.once.Do(c.release)

	return err
}
