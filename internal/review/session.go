package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"legallens/internal/analysis"
	"legallens/internal/shared/telemetry"
	"legallens/internal/shared/util"
)

// Phase is the coarse state of a review session.
type Phase string

const (
	PhaseNoFile       Phase = "no_file"
	PhaseFileSelected Phase = "file_selected"
	PhaseLoading      Phase = "loading"
	PhaseResult       Phase = "result"
)

const fallbackErrorMessage = "Failed to analyze document. Please try again."

// Analyzer produces an analysis for document text. *Client and
// *demo.Simulator both satisfy it.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (analysis.Result, error)
}

// State is a point-in-time copy of a session for rendering.
type State struct {
	Phase        Phase
	FileName     string
	Content      string
	Result       *analysis.Result
	Error        string
	APIKeyBanner bool
	DemoMode     bool
	ShowMasked   bool
	Playing      bool
}

// Session holds the client-side state of one upload and review. All methods
// are safe for concurrent use.
type Session struct {
	remote  Analyzer
	demo    Analyzer
	speaker Speaker

	mu       sync.Mutex
	fileName string
	hasFile  bool
	content  string
	result   *analysis.Result
	loading  bool
	errMsg   string
	banner   bool
	demoMode bool
	masked   bool
	playing  bool

	// gen changes whenever the document or mode changes so in-flight
	// analyses and utterances started earlier are ignored.
	gen     uint64
	playGen uint64
}

// NewSession constructs a Session. remote serves real analyses and demo
// serves demo mode. A nil speaker disables playback.
func NewSession(remote, demo Analyzer, speaker Speaker) *Session {
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	return &Session{remote: remote, demo: demo, speaker: speaker}
}

// SelectFile reads r as the new document named name.
func (s *Session) SelectFile(name string, r io.Reader) error {
	text, err := DecodeText(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.gen++
	s.fileName = util.CleanFileName(name)
	s.hasFile = true
	s.content = text
	s.result = nil
	s.loading = false
	s.errMsg = ""
	s.banner = false
	s.mu.Unlock()
	return nil
}

// OpenFile selects the file at path.
func (s *Session) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return s.SelectFile(filepath.Base(path), f)
}

// Analyze runs an analysis of the current content with the remote analyzer,
// or the demo analyzer in demo mode. It does nothing when there is no
// content. The returned error is also recorded in the session.
func (s *Session) Analyze(ctx context.Context) error {
	s.mu.Lock()
	if s.content == "" {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.errMsg = ""
	s.banner = false
	gen := s.gen
	content := s.content
	analyzer := s.remote
	if s.demoMode {
		analyzer = s.demo
	}
	s.mu.Unlock()

	var (
		res analysis.Result
		err error
	)
	if analyzer == nil {
		err = errors.New(fallbackErrorMessage)
	} else {
		res, err = analyzer.Analyze(ctx, content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// Superseded by a reset, a new file or a mode change.
		return err
	}
	s.loading = false
	if err != nil {
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = fallbackErrorMessage
		}
		s.errMsg = msg
		s.banner = strings.Contains(strings.ToLower(msg), "api key")
		telemetry.Warn("review.analyze_failed", map[string]any{
			"file":      s.fileName,
			"demo_mode": s.demoMode,
			"err":       msg,
		})
		return err
	}
	s.result = &res
	return nil
}

// SetDemoMode switches demo mode and clears any analysis and error.
func (s *Session) SetDemoMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.demoMode = on
	s.clearAnalysisLocked()
}

// ToggleDemoMode flips demo mode and reports the new value.
func (s *Session) ToggleDemoMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.demoMode = !s.demoMode
	s.clearAnalysisLocked()
	return s.demoMode
}

func (s *Session) clearAnalysisLocked() {
	s.gen++
	s.result = nil
	s.loading = false
	s.errMsg = ""
	s.banner = false
}

// ToggleView switches between the original and the masked document and
// reports whether the masked view is now selected.
func (s *Session) ToggleView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masked = !s.masked
	return s.masked
}

// DisplayText returns the document text for the selected view. The masked
// view needs a result; until then the original is shown.
func (s *Session) DisplayText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.masked && s.result != nil {
		return s.result.MaskedText
	}
	return s.content
}

// Play speaks the summary. It reports false when there is nothing to play.
func (s *Session) Play() (bool, error) {
	s.mu.Lock()
	if s.result == nil || s.result.SimplifiedText == "" {
		s.mu.Unlock()
		return false, nil
	}
	text := s.result.SimplifiedText
	s.playGen++
	token := s.playGen
	s.playing = true
	s.mu.Unlock()

	s.speaker.Cancel()
	err := s.speaker.Speak(text, DefaultUtterance, func() {
		s.mu.Lock()
		if s.playGen == token {
			s.playing = false
		}
		s.mu.Unlock()
	})
	if err != nil {
		s.mu.Lock()
		if s.playGen == token {
			s.playing = false
		}
		s.mu.Unlock()
		return false, err
	}
	return true, nil
}

// Stop cancels playback.
func (s *Session) Stop() {
	s.mu.Lock()
	s.playGen++
	s.playing = false
	s.mu.Unlock()
	s.speaker.Cancel()
}

// Reset returns the session to no_file. Demo mode is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	s.gen++
	s.playGen++
	s.fileName = ""
	s.hasFile = false
	s.content = ""
	s.result = nil
	s.loading = false
	s.errMsg = ""
	s.banner = false
	s.masked = false
	s.playing = false
	s.mu.Unlock()
	s.speaker.Cancel()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		FileName:     s.fileName,
		Content:      s.content,
		Error:        s.errMsg,
		APIKeyBanner: s.banner,
		DemoMode:     s.demoMode,
		ShowMasked:   s.masked,
		Playing:      s.playing,
	}
	if s.result != nil {
		res := *s.result
		res.KeyPoints = append([]string(nil), s.result.KeyPoints...)
		st.Result = &res
	}
	switch {
	case !s.hasFile:
		st.Phase = PhaseNoFile
	case s.loading:
		st.Phase = PhaseLoading
	case s.result != nil:
		st.Phase = PhaseResult
	default:
		st.Phase = PhaseFileSelected
	}
	return st
}
