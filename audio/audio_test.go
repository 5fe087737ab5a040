package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/herob4u/VRShowcase/engine"
)

const testRate = beep.SampleRate(1000)

func TestSilenceLength(t *testing.T) {
	c := NewSilence("gap", 500*time.Millisecond, testRate)
	if got := c.Length(); got != 500*time.Millisecond {
		t.Fatalf("Length = %v, want 500ms", got)
	}
	if c.Name() != "gap" {
		t.Errorf("Name = %q", c.Name())
	}
	if c.SampleRate() != testRate {
		t.Errorf("SampleRate = %v", c.SampleRate())
	}
}

func TestToneLengthAndDefault(t *testing.T) {
	c, err := NewTone("beep", 220, 250*time.Millisecond, testRate)
	if err != nil {
		t.Fatal(err)
	}
	if c.Length() != 250*time.Millisecond {
		t.Errorf("Length = %v, want 250ms", c.Length())
	}

	d, err := NewTone("default", 220, 0, testRate)
	if err != nil {
		t.Fatal(err)
	}
	if d.Length() != 500*time.Millisecond {
		t.Errorf("default Length = %v, want 500ms", d.Length())
	}
}

func TestToneRejectsFrequencyAboveNyquist(t *testing.T) {
	if _, err := NewTone("bad", 900, 100*time.Millisecond, testRate); err == nil {
		t.Fatal("expected error for frequency above half the sample rate")
	}
}

func TestClipStreamerLoop(t *testing.T) {
	c := NewSilence("gap", 100*time.Millisecond, testRate)

	samples := make([][2]float64, 300)
	n, ok := c.Streamer(false).Stream(samples)
	if n != 100 || !ok {
		t.Fatalf("one-shot streamed %d ok=%v, want 100", n, ok)
	}

	n, ok = c.Streamer(true).Stream(samples)
	if n != 300 || !ok {
		t.Fatalf("looping streamed %d ok=%v, want 300", n, ok)
	}
}

func TestNilClipAccessors(t *testing.T) {
	var c *Clip
	if c.Name() != "" || c.Length() != 0 {
		t.Fatal("nil clip should report empty name and zero length")
	}
}

func TestLoadWAVMissingFile(t *testing.T) {
	if _, err := LoadWAV("x", "does/not/exist.wav", testRate); err == nil {
		t.Fatal("expected error")
	}
}

func newCueWorld() (*engine.World, *Recorder, *Cue) {
	w := engine.NewWorld()
	rec := &Recorder{}
	e, _ := w.NewEntity("src")
	return w, rec, NewCue(e, rec, w.Scheduler, w.Status)
}

func TestCueCompletionFiresAfterLength(t *testing.T) {
	w, rec, cue := newCueWorld()
	clip := NewSilence("open", 300*time.Millisecond, testRate)

	done := 0
	if !cue.Play(clip, false, func() { done++ }) {
		t.Fatal("Play returned false")
	}
	w.RunFor(280*time.Millisecond, 20*time.Millisecond)
	if done != 0 {
		t.Fatal("completion fired early")
	}
	w.Tick(20 * time.Millisecond)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	if cue.Playing() {
		t.Error("cue should be idle after completion")
	}
	if len(rec.Plays) != 1 || rec.Plays[0].Clip != "open" {
		t.Errorf("plays = %v", rec.Names())
	}
	if got := w.Status.Ints.Get("audio.plays").Load(); got != 1 {
		t.Errorf("audio.plays = %d", got)
	}
}

func TestCueSupersedeCancelsCompletion(t *testing.T) {
	w, rec, cue := newCueWorld()
	first := NewSilence("first", 100*time.Millisecond, testRate)
	second := NewSilence("second", 100*time.Millisecond, testRate)

	var fired []string
	cue.Play(first, false, func() { fired = append(fired, "first") })
	w.Tick(50 * time.Millisecond)
	cue.Play(second, false, func() { fired = append(fired, "second") })
	w.RunFor(200*time.Millisecond, 10*time.Millisecond)

	if len(fired) != 1 || fired[0] != "second" {
		t.Fatalf("fired = %v, want [second]", fired)
	}
	if !rec.Plays[0].Stopped {
		t.Error("superseded voice should be stopped")
	}
}

func TestCueNilClipIsSilent(t *testing.T) {
	w, rec, cue := newCueWorld()
	called := false
	if cue.Play(nil, false, func() { called = true }) {
		t.Fatal("nil clip should not play")
	}
	w.RunFor(time.Second, 100*time.Millisecond)
	if called || len(rec.Plays) != 0 {
		t.Fatal("nil clip produced playback or completion")
	}
}

func TestCueLoopHasNoCompletion(t *testing.T) {
	w, rec, cue := newCueWorld()
	clip := NewSilence("hum", 50*time.Millisecond, testRate)

	cue.Play(clip, true, func() { t.Fatal("loop must not complete") })
	w.RunFor(time.Second, 50*time.Millisecond)
	if !cue.Looping() {
		t.Fatal("cue should still loop")
	}
	cue.Stop()
	if cue.Playing() || !rec.Plays[0].Stopped {
		t.Fatal("Stop should halt the loop")
	}
	if len(rec.Active()) != 0 {
		t.Fatal("no active playbacks expected")
	}
}

func TestCueWithoutBackendStillCompletes(t *testing.T) {
	w := engine.NewWorld()
	cue := NewCue(1, nil, w.Scheduler, nil)
	done := false
	cue.Play(NewSilence("x", 40*time.Millisecond, testRate), false, func() { done = true })
	w.RunFor(40*time.Millisecond, 20*time.Millisecond)
	if !done {
		t.Fatal("completion should fire without a backend")
	}
}

func TestSpeakerBackendBeforeInitIsSilent(t *testing.T) {
	sb := NewSpeakerBackend(testRate)
	v := sb.Play(NewSilence("x", 10*time.Millisecond, testRate), false)
	v.Stop()
	sb.Close()
}

func writeWAV(t *testing.T, path string, sr beep.SampleRate, samples int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, generators.Silence(samples), format); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knock.wav")
	writeWAV(t, path, testRate, 250)

	c, err := LoadWAV("knock", path, testRate)
	if err != nil {
		t.Fatal(err)
	}
	if c.Length() != 250*time.Millisecond {
		t.Fatalf("Length = %v, want 250ms", c.Length())
	}
}

func TestLoadWAVResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knock.wav")
	writeWAV(t, path, 2*testRate, 400)

	c, err := LoadWAV("knock", path, testRate)
	if err != nil {
		t.Fatal(err)
	}
	if c.SampleRate() != testRate {
		t.Fatalf("SampleRate = %v", c.SampleRate())
	}
	if d := c.Length() - 200*time.Millisecond; d < -20*time.Millisecond || d > 20*time.Millisecond {
		t.Fatalf("Length = %v, want about 200ms", c.Length())
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWAV("noise", path, testRate); err == nil {
		t.Fatal("expected decode error")
	}
}
