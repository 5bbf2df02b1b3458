package shape

// noCopy can be embedded to provide "go vet" linting
// when a handle should be moved or cloned - but is copied
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
