// Package backend selects a kernel.Kernel implementation by name. It is the
// one place in the module that imports all three concrete backends, so that
// callers (examples, optree drivers, comparison tests) can pick a backend at
// runtime instead of importing bspkernel/sdfx/manifold directly.
package backend

import (
	"fmt"

	"github.com/chazu/meshkernel/pkg/kernel"
	"github.com/chazu/meshkernel/pkg/kernel/bspkernel"
	"github.com/chazu/meshkernel/pkg/kernel/manifold"
	"github.com/chazu/meshkernel/pkg/kernel/sdfx"
)

// Names lists every backend New recognizes, in a stable preferred order.
var Names = []string{"bsp", "sdfx", "manifold"}

// New constructs the named kernel.Kernel backend. "bsp" is the native BSP
// implementation; "sdfx" renders through marching cubes over implicit SDFs;
// "manifold" binds the Manifold C library and only succeeds when the module
// was built with -tags=manifold.
func New(name string) (kernel.Kernel, error) {
	switch name {
	case "bsp":
		return bspkernel.New(), nil
	case "sdfx":
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	default:
		return nil, fmt.Errorf("backend: unknown kernel backend %q (want one of %v)", name, Names)
	}
}
