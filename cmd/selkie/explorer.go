package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/selkie-editor/selkie/internal/config"
	"github.com/selkie-editor/selkie/internal/dispatcher"
	"github.com/selkie-editor/selkie/internal/engine/selection"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// explorer is a read-only viewer that runs motions against a file and
// shows the resulting selections.
type explorer struct {
	screen   tcell.Screen
	registry *dispatcher.Registry
	dispatch *dispatcher.Dispatcher

	mu   sync.Mutex
	opts config.Options

	lines []string
	src   text.Source
	sels  *selection.Set

	// Input state: a count prefix, collected prefix keys, and a
	// binding waiting for its target character.
	count   int
	pending string
	waiting *pendingFind

	topLine int
	status  string
}

type pendingFind struct {
	binding dispatcher.Binding
	count   int
}

func newExplorer(lines []string, opts config.Options, registry *dispatcher.Registry) (*explorer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &explorer{
		screen:   screen,
		registry: registry,
		dispatch: dispatcher.New(registry),
		opts:     opts,
		lines:    lines,
		src:      text.NewSliceSource(lines),
		sels:     selection.NewSet(selection.NewCaret(text.DocumentBegin())),
	}, nil
}

// setOptions swaps the options, e.g. after a config file reload.
func (e *explorer) setOptions(opts config.Options) {
	e.mu.Lock()
	e.opts = opts
	e.status = "config reloaded"
	e.mu.Unlock()
	_ = e.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run drives the event loop until q or Ctrl-C.
func (e *explorer) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	for {
		e.draw()
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quit := e.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventInterrupt:
			// Redraw with the swapped options.
		case nil:
			return nil
		}
	}
}

func (e *explorer) handleKey(ev *tcell.EventKey) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		e.resetInput()
		e.sels.Collapse()
		e.status = ""
		return false
	case tcell.KeyRune:
		// Handled below.
	default:
		return false
	}

	r := ev.Rune()

	if e.waiting != nil {
		w := e.waiting
		e.waiting = nil
		e.runBinding(w.binding, w.count, r, true)
		return false
	}

	if r == 'q' && e.pending == "" {
		return true
	}

	if e.pending == "" && (r >= '1' && r <= '9' || (e.count > 0 && r == '0')) {
		e.count = e.count*10 + int(r-'0')
		return false
	}

	keys := e.pending + string(r)
	if ev.Modifiers()&tcell.ModAlt != 0 {
		keys = e.pending + "M-" + string(r)
	}

	if b, ok := e.registry.Lookup("normal", keys); ok {
		count := e.count
		e.resetInput()
		if spec, ok := e.registry.Action(b.Action); ok && spec.NeedsChar {
			e.waiting = &pendingFind{binding: b, count: count}
			e.status = keys + " …"
			return false
		}
		e.runBinding(b, count, 0, false)
		return false
	}

	if e.hasPrefix(keys) {
		e.pending = keys
		e.status = keys
		return false
	}

	e.resetInput()
	e.status = fmt.Sprintf("unbound: %q", keys)
	return false
}

func (e *explorer) runBinding(b dispatcher.Binding, count int, ch rune, hasChar bool) {
	c := e.opts.MotionContext(e.src)
	err := e.dispatch.Run(c, e.sels, b.Action, b.Extend, dispatcher.Input{
		Mode:    "normal",
		Keys:    b.Keys,
		Count:   count,
		Char:    ch,
		HasChar: hasChar,
	})
	if err != nil {
		e.status = err.Error()
		return
	}
	e.status = b.Action
}

func (e *explorer) hasPrefix(keys string) bool {
	for _, b := range e.registry.Bindings("normal") {
		if len(b.Keys) > len(keys) && strings.HasPrefix(b.Keys, keys) {
			return true
		}
	}
	return false
}

func (e *explorer) resetInput() {
	e.count = 0
	e.pending = ""
	e.waiting = nil
}

func (e *explorer) draw() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.screen.Clear()
	width, height := e.screen.Size()
	if height < 2 {
		e.screen.Show()
		return
	}
	rows := height - 1

	cursor := e.sels.Primary().Cursor
	if cursor.Line < e.topLine {
		e.topLine = cursor.Line
	}
	if cursor.Line >= e.topLine+rows {
		e.topLine = cursor.Line - rows + 1
	}

	normal := tcell.StyleDefault
	selected := tcell.StyleDefault.Reverse(true)

	for row := 0; row < rows; row++ {
		lineIdx := e.topLine + row
		if lineIdx >= len(e.lines) {
			break
		}
		col := 0
		for chIdx, r := range []rune(e.lines[lineIdx]) {
			style := normal
			if e.isSelected(text.NewPosition(lineIdx, chIdx)) {
				style = selected
			}
			e.screen.SetContent(col, row, r, nil, style)
			col += text.DisplayWidth(string(r))
			if col >= width {
				break
			}
		}
	}

	e.drawStatus(width, height-1)

	if cursor.Line >= e.topLine && cursor.Line < e.topLine+rows {
		x := text.PrefixWidth(e.lines[cursor.Line], cursor.Character)
		e.screen.ShowCursor(x, cursor.Line-e.topLine)
	} else {
		e.screen.HideCursor()
	}

	e.screen.Show()
}

func (e *explorer) isSelected(p text.Position) bool {
	for _, sel := range e.sels.All() {
		if sel.IsCaret() {
			continue
		}
		if sel.Region().Contains(p) {
			return true
		}
	}
	return false
}

func (e *explorer) drawStatus(width, row int) {
	primary := e.sels.Primary()
	parts := []string{primary.String()}
	if e.sels.Count() > 1 {
		parts = append(parts, fmt.Sprintf("%d sels", e.sels.Count()))
	}
	if e.count > 0 {
		parts = append(parts, fmt.Sprintf("count %d", e.count))
	}
	if e.status != "" {
		parts = append(parts, e.status)
	}
	line := strings.Join(parts, "  |  ")

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		e.screen.SetContent(col, row, r, nil, style)
		col += text.DisplayWidth(string(r))
	}
	for ; col < width; col++ {
		e.screen.SetContent(col, row, ' ', nil, style)
	}
}
