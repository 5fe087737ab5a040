package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/scene"
)

// useKeys map to usable entities in scene order
const useKeys = "1234567890abcdefghijklmno"

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleKey    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleRow    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleState  = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePaused = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// frame is a render snapshot taken between ticks
type frame struct {
	rows   []scene.Row
	status []string
	now    time.Duration
}

type ui struct {
	screen tcell.Screen
	cs     *engine.ClockScheduler
	sc     *scene.Scene
	usable []string
}

// runInteractive drives the scene in real time until the user quits or ctx ends
func runInteractive(ctx context.Context, sc *scene.Scene, tick time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	u := &ui{
		screen: screen,
		cs:     engine.NewClockScheduler(sc.World, tick),
		sc:     sc,
	}
	for _, r := range sc.Rows() {
		if r.Usable && len(u.usable) < len(useKeys) {
			u.usable = append(u.usable, r.Name)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return u.cs.Run(gctx) })
	g.Go(func() error { return u.renderLoop(gctx) })
	g.Go(func() error { return u.inputLoop(gctx, cancel) })

	// Wake the input loop once everything else is shutting down
	g.Go(func() error {
		<-gctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	return g.Wait()
}

func (u *ui) inputLoop(ctx context.Context, quit context.CancelFunc) error {
	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				quit()
				return nil
			}
		}
	}
}

// handleKey returns false when the user asks to quit
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return false
	case ' ':
		u.cs.TogglePause()
		return true
	}
	for i, k := range useKeys {
		if k == r && i < len(u.usable) {
			name := u.usable[i]
			u.cs.Post(func(w *engine.World) { w.UseByName(name) })
			break
		}
	}
	return true
}

func (u *ui) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var f frame
			u.cs.View(func(w *engine.World) {
				f.rows = u.sc.Rows()
				f.status = w.Status.Snapshot()
				f.now = w.Clock.Now()
			})
			u.draw(f)
		}
	}
}

func (u *ui) draw(f frame) {
	s := u.screen
	s.Clear()

	title := fmt.Sprintf("VR showcase: %s   t=%.2fs", u.sc.Name, f.now.Seconds())
	drawText(s, 1, 0, styleTitle, title)
	if u.cs.IsPaused() {
		drawText(s, len(title)+4, 0, stylePaused, "PAUSED")
	}

	y := 2
	keyOf := make(map[string]rune, len(u.usable))
	for i, name := range u.usable {
		keyOf[name] = rune(useKeys[i])
	}
	for _, r := range f.rows {
		if k, ok := keyOf[r.Name]; ok {
			drawText(s, 1, y, styleKey, fmt.Sprintf("[%c]", k))
		}
		drawText(s, 5, y, styleRow, fmt.Sprintf("%-16s %-8s", r.Name, r.Kind))
		drawText(s, 32, y, styleState, r.State)
		y++
	}

	y++
	for _, line := range f.status {
		drawText(s, 1, y, styleStatus, line)
		y++
	}

	_, h := s.Size()
	drawText(s, 1, h-1, styleStatus, "keys: use entity  space: pause  q: quit")
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
