package check

import "sync"

// Lazy defers construction of the wrapped validator until first use. The
// builder runs at most once, which makes self-referential validator graphs
// expressible without infinite construction.
type Lazy struct {
	name  string
	build func() Validator

	once sync.Once
	v    Validator
}

// NewLazy builds a deferred-construction validator.
func NewLazy(name string, build func() Validator) *Lazy {
	if build == nil {
		panic(ErrNilBuilder)
	}
	return &Lazy{name: name, build: build}
}

func (l *Lazy) Name() string { return l.name }

func (l *Lazy) Validate(value any, ctx *Context) Result[any] {
	l.once.Do(func() {
		l.v = l.build()
	})
	if l.v == nil {
		panic(ErrNilValidator)
	}
	return l.v.Validate(value, ctx)
}
