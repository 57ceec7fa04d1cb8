package review

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"legallens/internal/shared/telemetry"
)

// Utterance carries playback settings. Rate 1 is the engine's normal speed.
type Utterance struct {
	Rate  float64
	Pitch float64
}

// DefaultUtterance is used for summaries.
var DefaultUtterance = Utterance{Rate: 0.9, Pitch: 1}

// Speaker turns text into audio. Speak must not block on playback; onEnd runs
// once when the utterance finishes or is cancelled.
type Speaker interface {
	Speak(text string, u Utterance, onEnd func()) error
	Cancel()
}

// NopSpeaker finishes every utterance immediately.
type NopSpeaker struct{}

func (NopSpeaker) Speak(text string, u Utterance, onEnd func()) error {
	if onEnd != nil {
		onEnd()
	}
	return nil
}

func (NopSpeaker) Cancel() {}

// CommandSpeaker runs a local text-to-speech program, one utterance at a time.
type CommandSpeaker struct {
	// Program is "espeak" or "say". Args builds the argument list for other programs.
	Program string
	Args    func(text string, u Utterance) []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// DetectSpeaker returns a CommandSpeaker for the first TTS program found on
// PATH, or a NopSpeaker.
func DetectSpeaker() Speaker {
	for _, prog := range []string{"espeak", "say"} {
		if path, err := exec.LookPath(prog); err == nil {
			return &CommandSpeaker{Program: path}
		}
	}
	return NopSpeaker{}
}

func (s *CommandSpeaker) args(text string, u Utterance) []string {
	if s.Args != nil {
		return s.Args(text, u)
	}
	switch filepath.Base(s.Program) {
	case "say":
		// say speaks about 175 words per minute by default.
		return []string{"-r", strconv.Itoa(int(175 * u.Rate)), text}
	default:
		// espeak: -s words per minute (default 175), -p pitch 0-99 (default 50).
		return []string{
			"-s", strconv.Itoa(int(175 * u.Rate)),
			"-p", strconv.Itoa(int(50 * u.Pitch)),
			text,
		}
	}
}

// Speak cancels any utterance in progress and starts a new one.
func (s *CommandSpeaker) Speak(text string, u Utterance, onEnd func()) error {
	s.Cancel()

	cmd := exec.Command(s.Program, s.args(text, u)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.Program, err)
	}
	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()

	go func() {
		err := cmd.Wait()
		s.mu.Lock()
		current := s.cmd == cmd
		if current {
			s.cmd = nil
		}
		s.mu.Unlock()
		if err != nil && current {
			telemetry.Warn("speech.exit", map[string]any{"program": s.Program, "err": err.Error()})
		}
		if onEnd != nil {
			onEnd()
		}
	}()
	return nil
}

// Cancel stops the utterance in progress, if any.
func (s *CommandSpeaker) Cancel() {
	s.mu.Lock()
	cmd := s.cmd
	s.cmd = nil
	s.mu.Unlock()
	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}
