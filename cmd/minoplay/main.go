// Command minoplay is a terminal client for the mino engine: a tcell
// renderer, a beep line-clear chime, and a keyboard source that turns
// raw key events into the held-key bitmask Game.Update expects.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/s-shin/mino"
	"github.com/s-shin/mino/piece"
)

// holdWindow is how long a key is considered "still held" after its most
// recent key-down event. Terminals don't deliver key-up events reliably,
// so held state is inferred from the terminal's own OS key-repeat cadence
// instead, the same way a physical-keyboard repeat rate would read.
const holdWindow = 120 * time.Millisecond

const frameInterval = 16667 * time.Microsecond // ~60Hz, matches params.Gravity's 1/60 cells/frame

type keyTracker struct {
	lastSeen [8]time.Time
}

func (kt *keyTracker) press(bit mino.Input, now time.Time) {
	kt.lastSeen[bitIndex(bit)] = now
}

func (kt *keyTracker) snapshot(now time.Time) mino.Input {
	var in mino.Input
	for i, t := range kt.lastSeen {
		if !t.IsZero() && now.Sub(t) < holdWindow {
			in |= mino.Input(1 << uint(i))
		}
	}
	return in
}

func bitIndex(bit mino.Input) int {
	i := 0
	for bit > 1 {
		bit >>= 1
		i++
	}
	return i
}

func keyToInput(ev *tcell.EventKey) (mino.Input, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return mino.InputHardDrop, true
	case tcell.KeyDown:
		return mino.InputSoftDrop, true
	case tcell.KeyLeft:
		return mino.InputMoveLeft, true
	case tcell.KeyRight:
		return mino.InputMoveRight, true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 's', 'S':
			return mino.InputFirmDrop, true
		case 'z', 'Z':
			return mino.InputRotateCCW, true
		case 'x', 'X':
			return mino.InputRotateCW, true
		case 'c', 'C', ' ':
			return mino.InputHold, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

type audio struct {
	ready bool
}

func newAudio() *audio {
	a := &audio{}
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		a.ready = true
	}
	return a
}

// playLineClear chimes higher for a multi-line or T-spin clear than for a
// plain single, the same "one sine burst per event" approach the original
// client used for its hit sound.
func (a *audio) playLineClear(n int, t piece.TSpin) {
	if !a.ready {
		return
	}
	freq := beep.SampleRate(44100)
	hz := 440.0 + 110.0*float64(n)
	if t != piece.TSpinNone {
		hz += 220
	}
	sine, err := generators.SineTone(freq, hz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(freq.N(120*time.Millisecond), sine))
}

func (a *audio) close() {
	if a.ready {
		speaker.Close()
	}
}

func newGame(rng *rand.Rand) *mino.Game {
	params := mino.DefaultGameParams()
	pf := mino.NewPlayfield(mino.DefaultCols, mino.DefaultRows, mino.DefaultVisibleRows)
	queue := generateBag(rng)
	queue = append(queue, generateBag(rng)...)
	mgr := humanManager(params)
	data := mino.NewGameData(pf, queue, mgr)
	return mino.NewGame(params, data)
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	snd := newAudio()
	defer snd.close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newGame(rng)
	rend := newRenderer(screen)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	var tracker keyTracker
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if bit, ok := keyToInput(ev); ok {
					tracker.press(bit, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if len(g.Data().NextPieces) <= piece.Num() {
				g.AppendNextPieces(generateBag(rng)...)
			}

			in := tracker.snapshot(time.Now())
			g.Update(in)

			for _, e := range g.Data().Events {
				if e.Kind == mino.EventLineCleared && e.NumLines > 0 {
					snd.playLineClear(e.NumLines, e.TSpin)
					label := fmt.Sprintf("%d line(s)", e.NumLines)
					if l := tspinLabel(e.TSpin); l != "" {
						label = l + " " + label
					}
					rend.setFlash(label, 90)
				}
			}

			if g.StateID() == mino.StateGameOver || g.StateID() == mino.StateError {
				rend.draw(g)
				time.Sleep(2 * time.Second)
				return nil
			}

			rend.draw(g)
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
