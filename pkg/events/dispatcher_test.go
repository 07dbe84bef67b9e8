package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_SubscribeAndBroadcast(t *testing.T) {
	d := NewDispatcher()

	ch1, cancel1 := d.Subscribe("case:c-1")
	ch2, cancel2 := d.Subscribe("case:c-1")
	other, cancelOther := d.Subscribe("case:c-2")
	defer cancel2()
	defer cancelOther()

	d.Broadcast("case:c-1", []byte("hello"))

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, "hello", string(msg))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive broadcast")
		}
	}
	select {
	case <-other:
		t.Fatal("unrelated channel received broadcast")
	default:
	}

	// Cancel removes the subscription and closes the channel.
	cancel1()
	assert.Equal(t, 1, d.SubscriberCount("case:c-1"))
	_, open := <-ch1
	assert.False(t, open)

	// Double-cancel is safe.
	cancel1()
}

func TestDispatcher_SlowSubscriberDropsEvents(t *testing.T) {
	d := NewDispatcher()
	ch, cancel := d.Subscribe("cases")
	defer cancel()

	// Overfill the buffer; Broadcast must not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			d.Broadcast("cases", []byte("evt"))
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}

	// The buffered portion is still delivered.
	require.NotEmpty(t, <-ch)
}
