package synchronization

// Lock is a mutex backed by a one slot channel.
type Lock struct {
	l chan struct{}
}

func NewLock() *Lock {
	return &Lock{l: make(chan struct{}, 1)}
}

func (l *Lock) Lock() {
	l.l <- struct{}{}
}

func (l *Lock) Unlock() {
	<-l.l
}
