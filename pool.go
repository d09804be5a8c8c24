package caseless

import (
	"context"
	"io"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/norm"
)

// Transform instances are short-lived objects: every matching operation
// creates a pipeline of them and discards it when the comparison is done.
// To avoid multiple allocation of small objects we will pool them.

type transformPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var folderPool *transformPool
var decomposerPool *transformPool

func init() {
	folderPool = newTransformPool(func(context.Context) (interface{}, error) {
		return &Folder{}, nil
	})
	decomposerPool = newTransformPool(func(context.Context) (interface{}, error) {
		return &Decomposer{}, nil
	})
}

func newTransformPool(makeObject func(context.Context) (interface{}, error)) *transformPool {
	p := &transformPool{}
	factory := pool.NewPooledObjectFactorySimple(makeObject)
	p.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	p.opool = pool.NewObjectPool(p.ctx, factory, config)
	return p
}

// borrowFolder returns a pooled Folder, re-initialized to read from in.
func borrowFolder(in io.RuneReader) *Folder {
	SetupFoldTable()
	o, _ := folderPool.opool.BorrowObject(folderPool.ctx)
	f := o.(*Folder)
	f.reset(in)
	return f
}

// releaseFolder clears a Folder and puts it back into the pool.
func releaseFolder(f *Folder) {
	f.in = nil
	f.npend = 0
	_ = folderPool.opool.ReturnObject(folderPool.ctx, f)
}

// borrowDecomposer returns a pooled Decomposer, re-initialized to read
// from in and decompose to the given form.
func borrowDecomposer(in io.RuneReader, form norm.Form) *Decomposer {
	o, _ := decomposerPool.opool.BorrowObject(decomposerPool.ctx)
	d := o.(*Decomposer)
	d.reset(in, form)
	return d
}

// releaseDecomposer clears a Decomposer and puts it back into the pool.
// The reorder buffer's backing storage survives the round trip.
func releaseDecomposer(d *Decomposer) {
	d.in = nil
	d.buf = d.buf[:0]
	d.sorted = false
	d.err = nil
	_ = decomposerPool.opool.ReturnObject(decomposerPool.ctx, d)
}
