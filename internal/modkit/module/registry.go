package module

import (
	"fmt"
	"sort"
	"sync"

	phttp "todos/internal/platform/net/http"
)

// process registry for cross wiring ports during bootstrap in main
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set for a module name.
// Registering the same name twice is a wiring bug and panics
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := reg[name]; dup {
		panic(fmt.Sprintf("module: %q registered twice", name))
	}
	reg[name] = ports
}

// PortsAs fetches and type asserts a port set for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Names lists registered module names in order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}

// MountAll registers each module's ports and mounts its routes on r.
// Two modules claiming the same prefix panic before anything is mounted
func MountAll(r phttp.Router, mods ...Module) {
	seen := map[string]string{}
	for _, m := range mods {
		p, ok := m.(Prefixed)
		if !ok {
			continue
		}
		if other, dup := seen[p.Prefix()]; dup {
			panic(fmt.Sprintf("module: prefix %q claimed by %q and %q", p.Prefix(), other, m.Name()))
		}
		seen[p.Prefix()] = m.Name()
	}
	for _, m := range mods {
		Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
