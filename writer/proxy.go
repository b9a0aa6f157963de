package writer

import (
	"fmt"

	"github.com/evilsocket/datawriter/config"

	"github.com/evilsocket/islazy/log"
)

// State is the lifecycle state of a Proxy.
type State int

// Lifecycle states, in order.
const (
	Uninitialized State = iota
	ModuleLoaded
	InstanceConstructed
	Initialized
	Active
	TornDown
)

var stateNames = [...]string{
	Uninitialized:       "uninitialized",
	ModuleLoaded:        "module loaded",
	InstanceConstructed: "instance constructed",
	Initialized:         "initialized",
	Active:              "active",
	TornDown:            "torn down",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type options struct {
	loader *Loader
}

// Option customizes how New creates a writer.
type Option func(*options)

// WithLoader makes New load modules with l instead of DefaultLoader.
func WithLoader(l *Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// Proxy is the writer the rest of the system talks to. It owns the module
// handle and the backend instance created from it and forwards every
// operation to the backend. A Proxy must not be used concurrently.
type Proxy[E Element] struct {
	state     State
	canonical Canonical
	location  string
	module    Module
	instance  Backend[E]
}

// New creates a writer for the element type E from the given configuration.
// The "writerType" key selects the module, the whole configuration is then
// passed to the backend Init method. If any step fails, everything acquired
// so far is released and the error returned; errors coming from the backend
// are returned as they are.
func New[E Element](cfg config.Parameters, opts ...Option) (*Proxy[E], error) {
	o := options{loader: DefaultLoader}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Proxy[E]{
		canonical: Resolve(cfg.String(TypeKey, "")),
	}
	p.location = o.loader.Location(p.canonical)

	if err := p.construct(o.loader, cfg); err != nil {
		log.Debug("writer %s (%s) failed: %v", p.canonical, ElementTypeOf[E](), err)
		p.release()
		return nil, err
	}

	log.Debug("writer %s (%s) loaded from %s", p.canonical, ElementTypeOf[E](), p.location)

	return p, nil
}

func (p *Proxy[E]) construct(loader *Loader, cfg config.Parameters) (err error) {
	if p.module, err = loader.Load(p.canonical); err != nil {
		return err
	}
	p.location = p.module.Location()
	p.state = ModuleLoaded

	factory, err := ResolveFactory[E](p.module)
	if err != nil {
		return err
	}

	if p.instance, err = factory(); err != nil {
		p.instance = nil
		return err
	} else if p.instance == nil {
		return fmt.Errorf("%s (%s): %w", p.canonical, p.location, ErrNilInstance)
	}
	p.state = InstanceConstructed

	if err = p.instance.Init(cfg); err != nil {
		return err
	}
	p.state = Initialized

	p.state = Active
	return nil
}

// release destroys the instance and closes the module, returning the
// first error.
func (p *Proxy[E]) release() error {
	var err error
	if p.instance != nil {
		err = p.instance.Destroy()
		p.instance = nil
	}
	if p.module != nil {
		if cerr := p.module.Close(); err == nil {
			err = cerr
		}
		p.module = nil
	}
	p.state = TornDown
	return err
}

// Teardown destroys the backend instance and then unloads its module.
// It can be called from any state and more than once, only the first
// call on a constructed writer has any effect.
func (p *Proxy[E]) Teardown() error {
	if p == nil || p.state == TornDown {
		return nil
	}
	log.Debug("tearing down writer %s (%s) ...", p.canonical, p.state)
	return p.release()
}

// Close is the same as Teardown.
func (p *Proxy[E]) Close() error {
	return p.Teardown()
}

// Init always fails, writers are initialized by New.
func (p *Proxy[E]) Init(cfg config.Parameters) error {
	err := p.misuse("Init", "writers are initialized by New, Init can't be called directly")
	log.Error("%v", err)
	return err
}

func (p *Proxy[E]) misuse(op, detail string) *MisuseError {
	e := &MisuseError{Op: op, Detail: detail}
	if p != nil {
		e.Writer = string(p.canonical)
		e.State = p.state
	}
	return e
}

func (p *Proxy[E]) checkActive(op string) error {
	if p == nil || p.state != Active {
		return p.misuse(op, "writer is not active")
	}
	return nil
}

// GetSections fills sections with the layout of the backend output.
func (p *Proxy[E]) GetSections(sections Sections) error {
	if err := p.checkActive("GetSections"); err != nil {
		return err
	}
	return p.instance.GetSections(sections)
}

// SaveData saves numRecords records starting at recordStart. datasetSize
// is the total size of the dataset and variableSized the size in bytes of
// the current block for variable sized data, 0 otherwise. The result of
// the backend is returned unmodified.
func (p *Proxy[E]) SaveData(recordStart int, buffers Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	if err := p.checkActive("SaveData"); err != nil {
		return false, err
	}
	return p.instance.SaveData(recordStart, buffers, numRecords, datasetSize, variableSized)
}

// SaveMapping saves a label mapping in the targetID section.
func (p *Proxy[E]) SaveMapping(targetID string, mapping LabelMapping) error {
	if err := p.checkActive("SaveMapping"); err != nil {
		return err
	}
	return p.instance.SaveMapping(targetID, mapping)
}

// State returns the lifecycle state of the writer.
func (p *Proxy[E]) State() State {
	if p == nil {
		return Uninitialized
	}
	return p.state
}

// Canonical returns the canonical name of the writer module.
func (p *Proxy[E]) Canonical() Canonical {
	return p.canonical
}

// Location returns where the writer module was loaded from.
func (p *Proxy[E]) Location() string {
	return p.location
}

// ElementType returns the element type tag of this writer.
func (p *Proxy[E]) ElementType() ElementType {
	return ElementTypeOf[E]()
}
