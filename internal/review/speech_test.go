package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopSpeakerEndsImmediately(t *testing.T) {
	ended := false
	err := NopSpeaker{}.Speak("hello", DefaultUtterance, func() { ended = true })
	assert.NoError(t, err)
	assert.True(t, ended)
}

func TestCommandSpeakerArgs(t *testing.T) {
	espeak := &CommandSpeaker{Program: "/usr/bin/espeak"}
	assert.Equal(t, []string{"-s", "157", "-p", "50", "hi"}, espeak.args("hi", DefaultUtterance))

	say := &CommandSpeaker{Program: "say"}
	assert.Equal(t, []string{"-r", "157", "hi"}, say.args("hi", DefaultUtterance))

	custom := &CommandSpeaker{Program: "tts", Args: func(text string, u Utterance) []string {
		return []string{"--text", text}
	}}
	assert.Equal(t, []string{"--text", "hi"}, custom.args("hi", DefaultUtterance))
}

func TestCommandSpeakerStartFailure(t *testing.T) {
	s := &CommandSpeaker{Program: "/nonexistent/tts-binary"}
	called := false
	err := s.Speak("hi", DefaultUtterance, func() { called = true })
	assert.Error(t, err)
	assert.False(t, called)
	s.Cancel()
}
