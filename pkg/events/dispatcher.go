package events

import (
	"context"
	"log/slog"
	"sync"
)

// RemoteSubscriber keeps a remote LISTEN set in sync with the local
// subscriptions. Implemented by NotifyListener.
type RemoteSubscriber interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Dispatcher fans notifications out to in-process subscribers. The
// NotifyListener feeds it; SSE/WebSocket handlers subscribe per
// channel. Slow subscribers drop events rather than block the receive
// loop.
type Dispatcher struct {
	mu       sync.RWMutex
	subs     map[string]map[chan []byte]struct{}
	listener RemoteSubscriber
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[string]map[chan []byte]struct{})}
}

// SetListener attaches the remote LISTEN side. The first subscriber on
// a channel triggers LISTEN, the last cancel triggers UNLISTEN.
func (d *Dispatcher) SetListener(l RemoteSubscriber) {
	d.mu.Lock()
	d.listener = l
	d.mu.Unlock()
}

// Subscribe registers a buffered delivery channel for the named NOTIFY
// channel. The returned cancel func removes the subscription and closes
// the delivery channel.
func (d *Dispatcher) Subscribe(channel string) (<-chan []byte, func()) {
	ch := make(chan []byte, 64)
	d.mu.Lock()
	if d.subs[channel] == nil {
		d.subs[channel] = make(map[chan []byte]struct{})
	}
	first := len(d.subs[channel]) == 0
	d.subs[channel][ch] = struct{}{}
	listener := d.listener
	d.mu.Unlock()

	if first && listener != nil {
		go func() {
			if err := listener.Subscribe(context.Background(), channel); err != nil {
				slog.Warn("Remote LISTEN failed", "channel", channel, "error", err)
			}
		}()
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subs[channel], ch)
			last := len(d.subs[channel]) == 0
			if last {
				delete(d.subs, channel)
			}
			listener := d.listener
			d.mu.Unlock()
			close(ch)

			if last && listener != nil {
				go func() {
					if err := listener.Unsubscribe(context.Background(), channel); err != nil {
						slog.Warn("Remote UNLISTEN failed", "channel", channel, "error", err)
					}
				}()
			}
		})
	}
	return ch, cancel
}

// Broadcast delivers a payload to every subscriber of the channel.
// Full subscriber buffers drop the event.
func (d *Dispatcher) Broadcast(channel string, payload []byte) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for ch := range d.subs[channel] {
		select {
		case ch <- payload:
		default:
		}
	}
}

// SubscriberCount reports active subscriptions for a channel.
func (d *Dispatcher) SubscriberCount(channel string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs[channel])
}
