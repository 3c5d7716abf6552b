package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	var got []Event
	unsub := bus.Subscribe(func(e Event) { got = append(got, e) })
	bus.Publish("hello")
	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("expected hello got %v", got)
	}
	unsub()
	bus.Publish("again")
	if len(got) != 1 {
		t.Fatalf("handler called after unsubscribe: %v", got)
	}
}

func TestBusDeliveryOrder(t *testing.T) {
	bus := New()
	var order []int
	bus.Subscribe(func(Event) { order = append(order, 1) })
	bus.Subscribe(func(Event) { order = append(order, 2) })
	bus.Publish(struct{}{})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	calls := 0
	unsub := bus.Subscribe(func(Event) { calls++ })
	bus.Close()
	bus.Publish("x")
	if calls != 0 {
		t.Fatalf("expected no delivery after close, got %d", calls)
	}
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on unsubscribe after Close: %v", r)
		}
	}()
	unsub()
	bus.Subscribe(func(Event) { calls++ })()
}

func TestBusHandlerMayUnsubscribe(t *testing.T) {
	bus := New()
	calls := 0
	var unsub func()
	unsub = bus.Subscribe(func(Event) {
		calls++
		unsub()
	})
	bus.Publish(1)
	bus.Publish(2)
	if calls != 1 {
		t.Fatalf("expected 1 call got %d", calls)
	}
}
