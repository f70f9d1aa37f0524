package script

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/selkie-editor/selkie/internal/engine/text"
)

// Host owns a sandboxed Lua state and the motions registered in it.
// The state is single-threaded; the host serializes all calls.
type Host struct {
	id uuid.UUID

	mu      sync.Mutex
	state   *lua.LState
	motions map[string]*lua.LFunction
	closed  bool
}

// NewHost creates a sandboxed host with an empty motion table.
func NewHost() *Host {
	h := &Host{
		id:      uuid.New(),
		state:   lua.NewState(),
		motions: make(map[string]*lua.LFunction),
	}
	h.sandbox()
	h.installAPI()
	return h
}

// ID returns the host's identity, used in error reports and logs.
func (h *Host) ID() uuid.UUID {
	return h.id
}

// String returns a short identifier for the host.
func (h *Host) String() string {
	return "script-host-" + h.id.String()[:8]
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}

// sandbox strips the state down to pure computation. File loaders and
// the io/os modules go away; string, table, and math stay.
func (h *Host) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os", "print"} {
		h.state.SetGlobal(name, lua.LNil)
	}
	if pkg, ok := h.state.GetGlobal("package").(*lua.LTable); ok {
		h.state.SetField(pkg, "path", lua.LString(""))
		h.state.SetField(pkg, "cpath", lua.LString(""))
	}
}

// installAPI publishes the selkie global.
func (h *Host) installAPI() {
	tbl := h.state.NewTable()
	h.state.SetField(tbl, "register", h.state.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		if _, exists := h.motions[name]; exists {
			L.RaiseError("motion %q already registered", name)
			return 0
		}
		h.motions[name] = fn
		return 0
	}))
	h.state.SetGlobal("selkie", tbl)
}

// LoadString runs a script, collecting its registrations.
func (h *Host) LoadString(source string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	if err := h.state.DoString(source); err != nil {
		return fmt.Errorf("%s: %w", h, err)
	}
	return nil
}

// LoadFile reads and runs a script file.
func (h *Host) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return h.LoadString(string(data))
}

// Motions returns the registered motion names, sorted.
func (h *Host) Motions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.motions))
	for name := range h.motions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs a registered motion from p. The script's result is
// clamped to the document.
func (h *Host) Apply(src text.Source, name string, p text.Position, count int) (text.Position, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return p, ErrHostClosed
	}
	fn, ok := h.motions[name]
	if !ok {
		return p, fmt.Errorf("%q: %w", name, ErrMotionNotFound)
	}
	if count < 1 {
		count = 1
	}

	lines := h.state.NewFunction(func(L *lua.LState) int {
		idx := L.CheckInt(1)
		line, err := src.Line(idx)
		if err != nil {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(line))
		return 1
	})

	err := h.state.CallByParam(lua.P{Fn: fn, NRet: 2, Protect: true},
		lua.LNumber(p.Line), lua.LNumber(p.Character), lua.LNumber(count), lines)
	if err != nil {
		return p, &MotionError{Host: h.String(), Motion: name, Err: err}
	}

	chVal := h.state.Get(-1)
	lineVal := h.state.Get(-2)
	h.state.Pop(2)

	lineNum, lineOK := lineVal.(lua.LNumber)
	chNum, chOK := chVal.(lua.LNumber)
	if !lineOK || !chOK {
		return p, &MotionError{Host: h.String(), Motion: name, Err: ErrBadResult}
	}

	return text.Position{Line: int(lineNum), Character: int(chNum)}.Clamp(src), nil
}
