package game

// observers is a synchronous listener registry.
type observers[T any] struct {
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// subscribe registers fn and returns a function that removes it again.
func (o *observers[T]) subscribe(fn func(T)) func() {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[T]{id: id, fn: fn})

	return func() {
		kept := make([]subscription[T], 0, len(o.subs))
		for _, s := range o.subs {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		o.subs = kept
	}
}

// notify calls every listener registered at the time of the call, so a
// listener may unsubscribe itself without disturbing the iteration.
func (o *observers[T]) notify(v T) {
	subs := o.subs
	for _, s := range subs {
		s.fn(v)
	}
}
