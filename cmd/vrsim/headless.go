package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/event"
	"github.com/herob4u/VRShowcase/scene"
)

var errBadScript = errors.New("bad script step")

// scriptStep uses an entity at a simulated time
type scriptStep struct {
	At   time.Duration
	Name string
}

// parseScript reads "1s:front-door,2.5s:doorbell"; a bare number is seconds
func parseScript(s string) ([]scriptStep, error) {
	var steps []scriptStep
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		at, name, ok := strings.Cut(part, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errBadScript, part)
		}
		d, err := parseAt(at)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadScript, part, err)
		}
		steps = append(steps, scriptStep{At: d, Name: strings.TrimSpace(name)})
	}
	slices.SortStableFunc(steps, func(a, b scriptStep) int {
		return cmp.Compare(a.At, b.At)
	})
	return steps, nil
}

func parseAt(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	d, err := time.ParseDuration(s)
	if err != nil {
		secs, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, err
		}
		d = time.Duration(secs * float64(time.Second))
	}
	if d < 0 {
		return 0, errors.New("negative time")
	}
	return d, nil
}

var (
	styleTime    = color.Style{color.FgGray}
	styleName    = color.Style{color.FgCyan, color.OpBold}
	styleEvent   = color.Style{color.FgGreen}
	styleUse     = color.Style{color.FgMagenta, color.OpBold}
	styleDenied  = color.Style{color.FgRed, color.OpBold}
	styleSummary = color.Style{color.FgYellow}
)

type busOwner interface {
	Bus() *event.Bus
}

// runHeadless ticks the scene for duration, applying script steps and tracing every event to out
func runHeadless(sc *scene.Scene, steps []scriptStep, duration, tick time.Duration, rec *audio.Recorder, out io.Writer) error {
	w := sc.World
	for _, e := range w.Entities() {
		obj, _ := w.Object(e)
		owner, ok := obj.(busOwner)
		if !ok {
			continue
		}
		name := w.Name(e)
		owner.Bus().SubscribeAll(func(ev event.Event) {
			fmt.Fprintf(out, "%s %s %s\n",
				styleTime.Sprintf("[%8.3fs]", ev.Time.Seconds()),
				styleName.Sprintf("%-14s", name),
				styleEvent.Sprint(ev.Type))
		})
	}

	for _, st := range steps {
		if _, ok := w.Lookup(st.Name); !ok {
			return fmt.Errorf("%w: unknown entity %q", errBadScript, st.Name)
		}
	}

	next := 0
	for w.Clock.Now() < duration {
		for next < len(steps) && steps[next].At <= w.Clock.Now() {
			st := steps[next]
			next++
			if w.UseByName(st.Name) {
				fmt.Fprintf(out, "%s %s %s\n",
					styleTime.Sprintf("[%8.3fs]", w.Clock.Seconds()),
					styleName.Sprintf("%-14s", st.Name),
					styleUse.Sprint("use"))
			} else {
				fmt.Fprintf(out, "%s %s %s\n",
					styleTime.Sprintf("[%8.3fs]", w.Clock.Seconds()),
					styleName.Sprintf("%-14s", st.Name),
					styleDenied.Sprint("not usable"))
			}
		}
		w.Tick(tick)
	}

	fmt.Fprintln(out, styleSummary.Sprintf("-- %s after %v --", sc.Name, w.Clock.Now()))
	for _, r := range sc.Rows() {
		fmt.Fprintf(out, "%-14s %-8s %s\n", r.Name, r.Kind, r.State)
	}
	if rec != nil {
		fmt.Fprintf(out, "clips played: %d\n", len(rec.Plays))
	}
	for _, line := range w.Status.Snapshot() {
		fmt.Fprintln(out, line)
	}
	return nil
}
