package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"
)

// decodeFile opens a local audio file and returns a seekable stream.
// The stream owns the file and closes it.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := Extension(path); ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extWAV:
		streamer, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// skipID3v2 skips an ID3v2 tag some taggers prepend to FLAC files.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

// mp3Stream adapts llehouerou/go-mp3 to beep.StreamSeekCloser. Unlike the
// beep mp3 package it seeks to exact samples, which resume relies on.
type mp3Stream struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	// 16-bit stereo frames.
	need := len(samples) * 4
	if len(s.buf) < need {
		s.buf = make([]byte, need)
	}
	read, err := io.ReadFull(s.dec, s.buf[:need])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}
	n := read / 4
	if n == 0 {
		return 0, false
	}
	for i := range n {
		left := int16(binary.LittleEndian.Uint16(s.buf[i*4:]))    //nolint:gosec // pcm sample
		right := int16(binary.LittleEndian.Uint16(s.buf[i*4+2:])) //nolint:gosec // pcm sample
		samples[i][0] = float64(left) / 32768
		samples[i][1] = float64(right) / 32768
	}
	return n, true
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int {
	return max(int(s.dec.SampleCount()), 0)
}

func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error {
	return s.closer.Close()
}
