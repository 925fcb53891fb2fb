package render

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"misty-maze/ecs"
	"misty-maze/systems"
)

const sampleRate = 44100

// AudioSystem plays background music and the coin pickup chime
type AudioSystem struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmFile      *os.File
	chime        []byte
	volume       float64
}

// NewAudioSystem creates a new audio system. Only one may exist per process.
func NewAudioSystem(volume float64) *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		chime:        chimePCM(880, 0.12),
		volume:       min(max(volume, 0), 1),
	}
}

// Initialize subscribes to coin pickups
func (s *AudioSystem) Initialize(world *ecs.World) {
	world.Subscribe(systems.EventCoinCollected, func(ecs.Event) {
		s.PlayChime()
	})
}

// PlayChime plays the pickup sound once
func (s *AudioSystem) PlayChime() {
	player := s.audioContext.NewPlayerFromBytes(s.chime)
	player.SetVolume(s.volume)
	player.Play()
}

// PlayBGM loops an mp3 or ogg file as background music
func (s *AudioSystem) PlayBGM(path string) error {
	s.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening audio file: %w", err)
	}

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, file)
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("decoding audio file %s: %w", path, err)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		file.Close()
		return fmt.Errorf("creating audio player: %w", err)
	}

	s.bgmFile = file
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

// IsBGMPlaying returns whether background music is currently playing
func (s *AudioSystem) IsBGMPlaying() bool {
	return s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

// Close releases the music stream
func (s *AudioSystem) Close() {
	s.StopBGM()
}

// chimePCM renders a decaying sine as 16-bit little endian stereo
func chimePCM(freq, seconds float64) []byte {
	frames := int(seconds * sampleRate)
	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		v := int16(math.Sin(2*math.Pi*freq*t) * envelope * 0.4 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
