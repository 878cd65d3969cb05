package scrollfx

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TriggerParent, used as an Effect trigger, makes each target's parent its
// trigger (an image animated relative to the frame that clips it).
const TriggerParent = "parent"

// teardown is the controller's explicit release registry. Unregistrations
// always drain before releases so no live binding can reach a wrapper that
// is being removed.
type teardown struct {
	unregister []func()
	release    []func()
}

func (t *teardown) onUnregister(fn func()) { t.unregister = append(t.unregister, fn) }
func (t *teardown) onRelease(fn func())    { t.release = append(t.release, fn) }

// drain runs every registered function, newest first within each phase.
func (t *teardown) drain() {
	for i := len(t.unregister) - 1; i >= 0; i-- {
		t.unregister[i]()
	}
	for i := len(t.release) - 1; i >= 0; i-- {
		t.release[i]()
	}
	t.unregister = nil
	t.release = nil
}

// Controller is a mounted section: it owns the bindings and split artifacts
// created for one root from one Spec, and removes all of them on Unmount.
type Controller struct {
	id   uuid.UUID
	name string
	root *Node
	obs  *Observer
	log  *zap.Logger

	bindings []*Binding
	skipped  []string
	scope    teardown
	mounted  bool
}

// Mount builds and registers every effect of spec under root. Effects whose
// target cannot be found are logged and skipped; the rest still mount. Any
// other failure undoes everything done so far and is returned.
func Mount(obs *Observer, root *Node, spec Spec) (*Controller, error) {
	if obs == nil {
		return nil, errors.New("mount: nil observer")
	}
	if root == nil || !root.IsAttached() {
		return nil, fmt.Errorf("mount %q: %w", spec.Section, ErrDetached)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}

	name := spec.Section
	if name == "" {
		name = root.Name
	}
	c := &Controller{
		id:   uuid.New(),
		name: name,
		root: root,
		obs:  obs,
	}
	c.log = obs.Logger().With(zap.String("section", name), zap.String("id", c.id.String()))
	c.mounted = true

	for i := range spec.Effects {
		if err := c.mountEffect(i, &spec.Effects[i]); err != nil {
			c.Unmount()
			return nil, fmt.Errorf("mount %q: %w", name, err)
		}
	}
	c.log.Debug("section mounted",
		zap.Int("bindings", len(c.bindings)),
		zap.Strings("skipped", c.skipped))
	return c, nil
}

// mountEffect resolves one effect's targets and registers its bindings.
func (c *Controller) mountEffect(index int, e *Effect) error {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("%s/effect%d", c.name, index)
	}

	targets := c.root.Select(e.Target)
	if len(targets) == 0 {
		c.skip(name, "target not found", e.Target)
		return nil
	}

	var trigger *Node
	if e.Trigger != "" && e.Trigger != TriggerParent {
		found := c.root.Select(e.Trigger)
		if len(found) == 0 {
			c.skip(name, "trigger not found", e.Trigger)
			return nil
		}
		trigger = found[0]
	}
	triggerFor := func(t *Node) *Node {
		switch {
		case trigger != nil:
			return trigger
		case e.Trigger == TriggerParent && t.Parent != nil:
			return t.Parent
		}
		return t
	}

	if e.Split != SplitNone {
		for i, t := range targets {
			art, err := Split(t, e.Split)
			if errors.Is(err, ErrAlreadySplit) {
				c.skip(name, "already split", t.Name)
				continue
			}
			if err != nil {
				return err
			}
			c.scope.onRelease(art.Release)
			if len(art.Wrappers()) == 0 {
				continue
			}
			if err := c.add(e, indexed(name, i, len(targets)), art.Wrappers(), triggerFor(t)); err != nil {
				return err
			}
		}
		return nil
	}

	if e.Kind == KindStaggerReveal {
		return c.add(e, name, targets, triggerFor(targets[0]))
	}
	for i, t := range targets {
		if err := c.add(e, indexed(name, i, len(targets)), []*Node{t}, triggerFor(t)); err != nil {
			return err
		}
	}
	return nil
}

func indexed(name string, i, n int) string {
	if n == 1 {
		return name
	}
	return fmt.Sprintf("%s[%d]", name, i)
}

// add builds and registers one binding, recording its teardown.
func (c *Controller) add(e *Effect, name string, targets []*Node, trigger *Node) error {
	b, err := e.newBinding(name, targets, trigger)
	if err != nil {
		return err
	}
	h, err := c.obs.Register(b)
	if errors.Is(err, ErrDetached) {
		c.skip(name, "target detached", trigger.Name)
		return nil
	}
	if err != nil {
		return err
	}
	c.bindings = append(c.bindings, b)
	c.scope.onUnregister(func() {
		c.obs.Unregister(h)
		b.revert()
	})
	return nil
}

func (c *Controller) skip(name, reason, what string) {
	c.skipped = append(c.skipped, name)
	c.log.Warn("effect skipped",
		zap.String("effect", name),
		zap.String("reason", reason),
		zap.String("selector", what))
}

// Unmount unregisters every binding the controller registered, restores the
// props they touched, then releases every split artifact. Safe to call more
// than once and in the middle of running animations.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.scope.drain()
	c.log.Debug("section unmounted", zap.Int("bindings", len(c.bindings)))
	c.bindings = nil
}

// ID returns the section instance's unique identifier.
func (c *Controller) ID() uuid.UUID { return c.id }

// Name returns the section name.
func (c *Controller) Name() string { return c.name }

// Root returns the section root.
func (c *Controller) Root() *Node { return c.root }

// Mounted reports whether Unmount has not run yet.
func (c *Controller) Mounted() bool { return c.mounted }

// Bindings returns the bindings the controller registered, in order.
func (c *Controller) Bindings() []*Binding { return c.bindings }

// Skipped returns the names of effects skipped during Mount.
func (c *Controller) Skipped() []string { return c.skipped }

// Binding returns the first binding whose name is name or starts with
// name followed by an index suffix, or nil.
func (c *Controller) Binding(name string) *Binding {
	for _, b := range c.bindings {
		if b.Name == name || (len(b.Name) > len(name) && b.Name[:len(name)] == name && b.Name[len(name)] == '[') {
			return b
		}
	}
	return nil
}
