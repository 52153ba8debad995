package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/mattn/go-runewidth"
)

// Sentinel errors
var (
	ErrNotTerminal = errors.New("stdin and stdout must be a terminal")
	ErrTooSmall    = errors.New("terminal too small")
)

// Screen is the terminal surface the game loop polls and draws through
type Screen interface {
	// Init acquires the terminal and draws the board border for a height x width board
	Init(height, width int) error
	// Teardown releases the terminal, safe to call more than once
	Teardown()
	// PollKey waits up to timeout for a key press, ok is false on timeout
	PollKey(timeout time.Duration) (ev *tcell.EventKey, ok bool)
	DrawGlyph(row, col int, ch rune)
	DrawText(row, col int, s string)
	Clear()
	Show()
}

// TcellScreen implements Screen over a tcell.Screen
type TcellScreen struct {
	screen tcell.Screen
	height int
	width  int

	styles       map[rune]tcell.Style
	defaultStyle tcell.Style
	borderStyle  tcell.Style

	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}

	started  bool
	teardown sync.Once
}

// New wraps screen; a nil screen is created from the environment on Init
func New(screen tcell.Screen) *TcellScreen {
	defaultStyle := tcell.StyleDefault
	return &TcellScreen{
		screen: screen,
		styles: map[rune]tcell.Style{
			constants.GlyphHead: defaultStyle.Foreground(tcell.ColorGreen),
			constants.GlyphFood: defaultStyle.Foreground(tcell.ColorRed).Bold(true),
		},
		defaultStyle: defaultStyle,
		borderStyle:  defaultStyle.Foreground(tcell.ColorGray),
		events:       make(chan tcell.Event, constants.EventQueueSize),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Init acquires the terminal, verifies it fits the board and starts the event pump
func (t *TcellScreen) Init(height, width int) error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		t.screen = s
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	w, h := t.screen.Size()
	if w < width || h < height {
		t.screen.Fini()
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, width, height, w, h)
	}

	t.height = height
	t.width = width

	t.screen.SetStyle(t.defaultStyle)
	t.screen.HideCursor()
	t.screen.Clear()
	t.drawBorder()
	t.screen.Show()

	t.started = true
	go t.pump()

	return nil
}

// pump forwards tcell events until the screen is finalized
func (t *TcellScreen) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Teardown stops the pump and restores the terminal
func (t *TcellScreen) Teardown() {
	t.teardown.Do(func() {
		if !t.started {
			return
		}
		close(t.quit)
		t.screen.Fini()
		<-t.done
	})
}

// PollKey returns the first key press within timeout
// Resize events resync the screen and the wait continues against the same deadline
func (t *TcellScreen) PollKey(timeout time.Duration) (*tcell.EventKey, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, true
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return nil, false
		}
	}
}

// DrawGlyph sets a single cell, styled by glyph
func (t *TcellScreen) DrawGlyph(row, col int, ch rune) {
	style, ok := t.styles[ch]
	if !ok {
		style = t.defaultStyle
	}
	t.screen.SetContent(col, row, ch, nil, style)
}

// DrawText writes s left to right starting at (row, col), honoring wide runes
func (t *TcellScreen) DrawText(row, col int, s string) {
	x := col
	for _, r := range s {
		t.screen.SetContent(x, row, r, nil, t.defaultStyle)
		x += runewidth.RuneWidth(r)
	}
}

// Clear blanks the screen and redraws the border
func (t *TcellScreen) Clear() {
	t.screen.Clear()
	t.drawBorder()
}

// Show flushes pending changes to the terminal
func (t *TcellScreen) Show() {
	t.screen.Show()
}

// drawBorder frames the board; border cells are the wall
func (t *TcellScreen) drawBorder() {
	bottom, right := t.height-1, t.width-1
	for col := 1; col < right; col++ {
		t.screen.SetContent(col, 0, tcell.RuneHLine, nil, t.borderStyle)
		t.screen.SetContent(col, bottom, tcell.RuneHLine, nil, t.borderStyle)
	}
	for row := 1; row < bottom; row++ {
		t.screen.SetContent(0, row, tcell.RuneVLine, nil, t.borderStyle)
		t.screen.SetContent(right, row, tcell.RuneVLine, nil, t.borderStyle)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, t.borderStyle)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, t.borderStyle)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, t.borderStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, t.borderStyle)
}
