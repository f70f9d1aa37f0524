package script

import (
	"errors"
	"testing"

	"github.com/selkie-editor/selkie/internal/dispatcher"
	"github.com/selkie-editor/selkie/internal/engine/classify"
	"github.com/selkie-editor/selkie/internal/engine/motion"
	"github.com/selkie-editor/selkie/internal/engine/selection"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

func TestRegisterAndApply(t *testing.T) {
	h := NewHost()
	defer h.Close()

	err := h.LoadString(`
		selkie.register("two-right", function(line, char, count, lines)
			return line, char + 2 * count
		end)
	`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	src := text.NewSliceSource([]string{"abcdef"})
	got, err := h.Apply(src, "two-right", text.NewPosition(0, 1), 1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != text.NewPosition(0, 3) {
		t.Errorf("expected (0:3), got %s", got)
	}
}

func TestApplyClampsResult(t *testing.T) {
	h := NewHost()
	defer h.Close()

	if err := h.LoadString(`
		selkie.register("way-out", function(line, char, count, lines)
			return 99, 99
		end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	src := text.NewSliceSource([]string{"ab", "cd"})
	got, err := h.Apply(src, "way-out", text.NewPosition(0, 0), 1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != text.NewPosition(1, 2) {
		t.Errorf("expected clamp to (1:2), got %s", got)
	}
}

func TestLinesAccessor(t *testing.T) {
	h := NewHost()
	defer h.Close()

	// Lands at the end of the current line using the accessor.
	if err := h.LoadString(`
		selkie.register("line-len", function(line, char, count, lines)
			local s = lines(line)
			if s == nil then return line, char end
			return line, #s
		end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	src := text.NewSliceSource([]string{"hello"})
	got, err := h.Apply(src, "line-len", text.NewPosition(0, 0), 1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != text.NewPosition(0, 5) {
		t.Errorf("expected (0:5), got %s", got)
	}
}

func TestDuplicateRegistrationFails(t *testing.T) {
	h := NewHost()
	defer h.Close()

	script := `selkie.register("dup", function(l, c) return l, c end)`
	if err := h.LoadString(script); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := h.LoadString(script); err == nil {
		t.Error("expected an error on duplicate registration")
	}
}

func TestBadResult(t *testing.T) {
	h := NewHost()
	defer h.Close()

	if err := h.LoadString(`
		selkie.register("strings", function(l, c) return "a", "b" end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	src := text.NewSliceSource([]string{"ab"})
	_, err := h.Apply(src, "strings", text.NewPosition(0, 0), 1)
	if !errors.Is(err, ErrBadResult) {
		t.Errorf("expected ErrBadResult, got %v", err)
	}
	var merr *MotionError
	if !errors.As(err, &merr) || merr.Motion != "strings" {
		t.Errorf("expected MotionError naming the motion, got %v", err)
	}
}

func TestMotionNotFound(t *testing.T) {
	h := NewHost()
	defer h.Close()

	src := text.NewSliceSource([]string{"ab"})
	if _, err := h.Apply(src, "nope", text.NewPosition(0, 0), 1); !errors.Is(err, ErrMotionNotFound) {
		t.Errorf("expected ErrMotionNotFound, got %v", err)
	}
}

func TestSandboxRemovesIO(t *testing.T) {
	h := NewHost()
	defer h.Close()

	if err := h.LoadString(`io.open("/etc/passwd")`); err == nil {
		t.Fatal("expected sandboxed io to be unavailable")
	}
	if err := h.LoadString(`os.getenv("HOME")`); err == nil {
		t.Fatal("expected sandboxed os to be unavailable")
	}
	if err := h.LoadString(`loadstring("return 1")`); err == nil {
		t.Fatal("expected loadstring to be unavailable")
	}
}

func TestClosedHost(t *testing.T) {
	h := NewHost()
	h.Close()

	if err := h.LoadString(`selkie.register("x", function(l, c) return l, c end)`); !errors.Is(err, ErrHostClosed) {
		t.Errorf("expected ErrHostClosed, got %v", err)
	}
	src := text.NewSliceSource([]string{"ab"})
	if _, err := h.Apply(src, "x", text.NewPosition(0, 0), 1); !errors.Is(err, ErrHostClosed) {
		t.Errorf("expected ErrHostClosed, got %v", err)
	}
}

func TestBindIntoDispatcher(t *testing.T) {
	h := NewHost()
	defer h.Close()

	if err := h.LoadString(`
		selkie.register("hop", function(line, char, count, lines)
			return line, char + 1
		end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	reg := dispatcher.NewRegistry()
	if err := Bind(h, reg, nil); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := reg.Bind(dispatcher.Binding{Mode: "normal", Keys: "+", Action: "lua:hop"}); err != nil {
		t.Fatalf("binding scripted action: %v", err)
	}

	d := dispatcher.New(reg)
	c := motion.Context{
		Source:     text.NewSliceSource([]string{"abcdef"}),
		Classifier: classify.New(""),
	}
	sels := selection.NewSet(selection.NewCaret(text.NewPosition(0, 0)))

	// Counts repeat the scripted step like any other point motion.
	err := d.Dispatch(c, sels, dispatcher.Input{Mode: "normal", Keys: "+", Count: 3})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := sels.Primary().Cursor; got != text.NewPosition(0, 3) {
		t.Errorf("expected (0:3), got %s", got)
	}
}
