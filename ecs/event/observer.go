package event

// Observer holds at most one message handler and one signal handler per
// EventID. Registering again for the same EventID replaces the previous
// handler: last registration wins, there is no fan-out within an observer.
type Observer struct {
	name     string
	handlers map[EventID]func(Message)
	signals  map[EventID]func()
}

func NewObserver(name string) *Observer {
	return &Observer{
		name:     name,
		handlers: make(map[EventID]func(Message)),
		signals:  make(map[EventID]func()),
	}
}

func (o *Observer) Name() string {
	if o == nil {
		return ""
	}
	return o.name
}

// Handle sets the message handler for id.
func (o *Observer) Handle(id EventID, fn func(Message)) {
	if fn == nil {
		delete(o.handlers, id)
		return
	}
	o.handlers[id] = fn
}

// HandleSignal sets the payload-free handler for id.
func (o *Observer) HandleSignal(id EventID, fn func()) {
	if fn == nil {
		delete(o.signals, id)
		return
	}
	o.signals[id] = fn
}

// Notify runs the message handler, then the signal handler, for the
// message's EventID. Either may be absent.
func (o *Observer) Notify(msg Message) {
	if o == nil || msg == nil {
		return
	}
	id := msg.EventID()
	if fn, ok := o.handlers[id]; ok {
		fn(msg)
	}
	if fn, ok := o.signals[id]; ok {
		fn()
	}
}

// Clear drops every handler.
func (o *Observer) Clear() {
	clear(o.handlers)
	clear(o.signals)
}
