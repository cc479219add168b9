package terminal

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func TestHeldKeysWindow(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := NewHeldKeys(clock, 100*time.Millisecond)

	if keys.IsKeyHeld(engine.KeyPlayer1Up) {
		t.Fatal("no key should be held initially")
	}

	keys.Press(engine.KeyPlayer1Up)
	if !keys.IsKeyHeld(engine.KeyPlayer1Up) {
		t.Error("key should be held right after press")
	}
	if keys.IsKeyHeld(engine.KeyPlayer1Down) {
		t.Error("other keys must stay released")
	}

	clock.Advance(99 * time.Millisecond)
	if !keys.IsKeyHeld(engine.KeyPlayer1Up) {
		t.Error("key should still be held inside the window")
	}

	// Auto-repeat extends the hold
	keys.Press(engine.KeyPlayer1Up)
	clock.Advance(99 * time.Millisecond)
	if !keys.IsKeyHeld(engine.KeyPlayer1Up) {
		t.Error("repeat should extend the hold")
	}

	clock.Advance(time.Millisecond)
	if keys.IsKeyHeld(engine.KeyPlayer1Up) {
		t.Error("key should be released once the window elapses")
	}
}

// A typical keyboard waits ~500ms before the first repeat, then repeats every ~33ms
func TestHeldKeysDefaultWindowAcrossRepeatDelay(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := NewHeldKeys(clock, 0)

	if keys.Window() != parameter.KeyHoldWindow {
		t.Fatalf("default window = %v, want %v", keys.Window(), parameter.KeyHoldWindow)
	}

	keys.Press(engine.KeyPlayer2Up)
	clock.Advance(parameter.KeyHoldWindow)
	if keys.IsKeyHeld(engine.KeyPlayer2Up) {
		t.Error("key should stall before the first auto-repeat arrives")
	}

	clock.Advance(500*time.Millisecond - parameter.KeyHoldWindow)
	for i := 0; i < 10; i++ {
		keys.Press(engine.KeyPlayer2Up)
		clock.Advance(33 * time.Millisecond)
		if !keys.IsKeyHeld(engine.KeyPlayer2Up) {
			t.Fatalf("repeat %d: key released between auto-repeats", i)
		}
	}
}

func TestHeldKeysReleaseAll(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := NewHeldKeys(clock, 0)

	if keys.Window() <= 0 {
		t.Fatalf("default window = %v", keys.Window())
	}

	for k := engine.Key(0); k < engine.KeyCount; k++ {
		keys.Press(k)
	}
	keys.Press(engine.KeyCount) // ignored

	keys.ReleaseAll()
	for k := engine.Key(0); k < engine.KeyCount; k++ {
		if keys.IsKeyHeld(k) {
			t.Errorf("%v still held after ReleaseAll", k)
		}
	}
	if keys.IsKeyHeld(engine.KeyCount) {
		t.Error("out-of-range key reported held")
	}
}

func TestKeyMapResolve(t *testing.T) {
	m := DefaultKeyMap()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		key    engine.Key
	}{
		{"LowerW", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionKey, engine.KeyPlayer1Up},
		{"UpperS", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), ActionKey, engine.KeyPlayer1Down},
		{"ArrowUp", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionKey, engine.KeyPlayer2Up},
		{"ArrowDown", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionKey, engine.KeyPlayer2Down},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, 0},
		{"CtrlC", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit, 0},
		{"UnboundRune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone, 0},
		{"UnboundKey", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, key := m.Resolve(tt.ev)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if action == ActionKey && key != tt.key {
				t.Errorf("key = %v, want %v", key, tt.key)
			}
		})
	}
}

func TestTerminalHandleEvent(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := NewHeldKeys(clock, 100*time.Millisecond)
	term := New(screen, keys, DefaultKeyMap())

	quits := 0
	quit := func() { quits++ }

	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), quit) {
		t.Fatal("key event should keep polling")
	}
	if !keys.IsKeyHeld(engine.KeyPlayer2Up) {
		t.Error("arrow up should hold player 2 up")
	}

	term.HandleEvent(tcell.NewEventResize(100, 30), quit)
	if keys.IsKeyHeld(engine.KeyPlayer2Up) {
		t.Error("resize should release held keys")
	}

	term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit)
	if quits != 1 {
		t.Errorf("quit called %d times, want 1", quits)
	}

	if term.HandleEvent(nil, quit) {
		t.Error("nil event means the screen is gone, polling should stop")
	}
}

func TestTerminalPollStopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := NewHeldKeys(clock, time.Second)
	term := New(screen, keys, DefaultKeyMap())
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	quit := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		term.Poll(func() { quit <- struct{}{} })
		close(done)
	}()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("escape did not request quit")
	}

	term.Fini()
	term.Fini() // idempotent

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Poll did not return after Fini")
	}
}

func TestRendererScalesWorldToCells(t *testing.T) {
	screen := newSimScreen(t, 64, 48)
	r := NewRenderer(screen, 640, 480)
	bg := color.RGBA{R: 100, G: 149, B: 237, A: 255}
	fg := color.RGBA{R: 255, A: 255}

	r.Clear(bg)
	if err := r.DrawSprite(NewTexture(16, 64, fg), vmath.NewVec2(16, 208)); err != nil {
		t.Fatalf("DrawSprite failed: %v", err)
	}

	x0, y0, x1, y1 := r.CellSpan(vmath.NewRect(16, 208, 16, 64))
	if x0 != 1 || y0 != 20 || x1 != 4 || y1 != 28 {
		t.Fatalf("CellSpan = (%d,%d)-(%d,%d), want (1,20)-(4,28)", x0, y0, x1, y1)
	}

	cellBg := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, b, _ := style.Decompose()
		return b
	}
	if got := cellBg(2, 24); got != toTcell(fg) {
		t.Errorf("sprite cell bg = %v, want %v", got, toTcell(fg))
	}
	if got := cellBg(10, 10); got != toTcell(bg) {
		t.Errorf("background cell bg = %v, want %v", got, toTcell(bg))
	}
	if got := cellBg(4, 24); got != toTcell(bg) {
		t.Errorf("cell right of sprite bg = %v, want background", got)
	}
}

func TestRendererClipsAndKeepsTinySprites(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	r := NewRenderer(screen, 640, 480)
	r.Clear(color.RGBA{A: 255})

	// Entirely off-screen: nothing to draw, no panic
	if err := r.DrawSprite(NewTexture(16, 64, color.RGBA{G: 255, A: 255}), vmath.NewVec2(16, -10000)); err != nil {
		t.Fatalf("DrawSprite off-screen failed: %v", err)
	}

	x0, y0, x1, y1 := r.CellSpan(vmath.NewRect(300, 200, 1, 1))
	if x1-x0 < 1 || y1-y0 < 1 {
		t.Errorf("tiny sprite span = (%d,%d)-(%d,%d), want at least one cell", x0, y0, x1, y1)
	}
}

type otherTexture struct{}

func (otherTexture) Width() int  { return 1 }
func (otherTexture) Height() int { return 1 }

func TestRendererRejectsForeignTexture(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	r := NewRenderer(screen, 640, 480)

	err := r.DrawSprite(otherTexture{}, vmath.Zero())
	if !errors.Is(err, engine.ErrForeignTexture) {
		t.Fatalf("DrawSprite error = %v, want ErrForeignTexture", err)
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoaderAveragesVisiblePixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 200, G: 100, B: 0, A: 255})
		img.SetNRGBA(x, 1, color.NRGBA{}) // transparent row is ignored
	}
	path := filepath.Join(t.TempDir(), "paddle.png")
	writePNG(t, path, img)

	tex, err := NewLoader().LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 2 {
		t.Errorf("size = %dx%d, want 4x2", tex.Width(), tex.Height())
	}
	if c := tex.(*Texture).Color(); c != (color.RGBA{R: 200, G: 100, B: 0, A: 255}) {
		t.Errorf("Color = %v", c)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewLoader().LoadTexture(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader().LoadTexture(garbage); err == nil {
		t.Error("expected decode error for a corrupt file")
	}

	if _, err := TextureFromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image error = %v, want ErrEmptyImage", err)
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	EmergencyReset(f)
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("expected reset sequences to be written")
	}
}
