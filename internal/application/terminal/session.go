// Package terminal drives the weather screen from an interactive line-oriented terminal.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go-weather/internal/application/screen"
)

// Screen is the part of the screen controller the terminal drives
type Screen interface {
	Snapshot() screen.State
	Subscribe(listener screen.Listener)
	ToggleSearch()
	ChangeText(text string) error
	Blur()
	SelectIndex(index int) error
	Refresh() bool
}

// Session reads commands from in and redraws the screen on out after every state change
type Session struct {
	screen Screen
	in     io.Reader
	out    io.Writer

	mu   sync.Mutex
	last string
}

func NewSession(s Screen, in io.Reader, out io.Writer) *Session {
	return &Session{screen: s, in: in, out: out}
}

// Run blocks until /quit, the end of input or ctx is done
func (s *Session) Run(ctx context.Context) error {
	s.screen.Subscribe(func(state screen.State) { s.draw(state) })
	s.draw(s.screen.Snapshot())

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line := <-lines:
			if quit := s.handle(line); quit {
				return nil
			}
		}
	}
}

func (s *Session) handle(line string) bool {
	line = strings.TrimSpace(line)
	command, argument, _ := strings.Cut(line, " ")

	switch command {
	case "":
	case "/quit", "/exit":
		return true
	case "/search":
		s.screen.ToggleSearch()
	case "/blur":
		s.screen.Blur()
	case "/refresh":
		if !s.screen.Refresh() {
			s.println("refresh already in progress")
		}
	case "/pick":
		position, err := strconv.Atoi(strings.TrimSpace(argument))
		if err != nil {
			s.println("usage: /pick N")
			return false
		}
		if err := s.screen.SelectIndex(position - 1); err != nil {
			s.println(fmt.Sprintf("no search result %d", position))
		}
	case "/help":
		s.println(helpLine)
	default:
		if !s.screen.Snapshot().ShowSearch {
			s.screen.ToggleSearch()
		}
		if err := s.screen.ChangeText(line); err != nil {
			s.println(err.Error())
		}
	}
	return false
}

func (s *Session) draw(state screen.State) {
	text := RenderText(screen.Render(state))

	s.mu.Lock()
	defer s.mu.Unlock()
	if text == s.last {
		return
	}
	s.last = text
	_, _ = io.WriteString(s.out, "\n"+text)
}

func (s *Session) println(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}
