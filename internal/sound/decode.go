package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for file extensions no decoder handles.
var ErrUnsupported = errors.New("unsupported audio file")

// IsAudio reports whether path has an extension Open can decode.
func IsAudio(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".mp3", ".flac":
		return true
	}
	return false
}

// Open decodes a WAV, MP3 or FLAC file. Closing the streamer closes the file.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Envelope splits s into n equal segments and returns each segment's peak
// amplitude scaled so the loudest becomes limit-1, rounded to whole numbers.
// Fewer values come back when s has fewer than n samples.
func Envelope(s beep.StreamSeeker, n, limit int) ([]float64, error) {
	total := s.Len()
	if total <= 0 || n <= 0 {
		return []float64{}, nil
	}
	if n > total {
		n = total
	}
	if limit < 1 {
		limit = 1
	}
	if err := s.Seek(0); err != nil {
		return nil, err
	}

	peaks := make([]float64, n)
	buf := make([][2]float64, 512)
	pos := 0
	for pos < total {
		k, ok := s.Stream(buf)
		for j := 0; j < k; j++ {
			idx := (pos + j) * n / total
			if idx >= n {
				idx = n - 1
			}
			peaks[idx] = math.Max(peaks[idx], math.Max(math.Abs(buf[j][0]), math.Abs(buf[j][1])))
		}
		pos += k
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	top := 0.0
	for _, p := range peaks {
		top = math.Max(top, p)
	}
	values := make([]float64, n)
	if top == 0 {
		return values, nil
	}
	for i, p := range peaks {
		values[i] = math.Round(p / top * float64(limit-1))
	}
	return values, nil
}
