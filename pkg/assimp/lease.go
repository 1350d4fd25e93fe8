package assimp

import (
	"fmt"
	"sync/atomic"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// owner holds one foreign allocation shared by a scene and its clones.
type owner struct {
	id   uuid.UUID
	gw   Gateway
	ptr  *abi.Scene
	refs atomic.Int32
	log  *zap.Logger
}

func newOwner(gw Gateway, ptr *abi.Scene, log *zap.Logger) *owner {
	o := &owner{id: uuid.New(), gw: gw, ptr: ptr, log: log}
	o.refs.Store(1)
	return o
}

func (o *owner) acquire() { o.refs.Add(1) }

// drop releases the allocation when the last reference goes away.
func (o *owner) drop() {
	switch n := o.refs.Add(-1); {
	case n == 0:
		o.gw.Release(o.ptr)
		o.log.Debug("scene released", zap.Stringer("scene", o.id))
	case n < 0:
		panic(fmt.Sprintf("assimp: scene %s released too many times", o.id))
	}
}

// lease is one handle's claim on an owner. It is separate from Scene so
// the cleanup attached to a Scene can reference it.
type lease struct {
	owner    *owner
	path     string
	released atomic.Bool
}

// end gives the claim back. It reports false when it was already ended.
func (l *lease) end() bool {
	if !l.released.CompareAndSwap(false, true) {
		return false
	}
	l.owner.drop()
	return true
}

// leaked runs when a Scene became unreachable without Close.
func (l *lease) leaked() {
	if l.end() {
		l.owner.log.Warn("scene garbage collected without Close",
			zap.Stringer("scene", l.owner.id),
			zap.String("path", l.path))
	}
}

func useAfterRelease(op string) error {
	return fmt.Errorf("assimp: %s: %w", op, ErrUseAfterRelease)
}
