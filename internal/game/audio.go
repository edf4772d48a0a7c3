package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/sound"
)

// startAudio opens the speaker and plays the tone generator forever; muting
// is done on the generator, not the speaker.
func startAudio(t *sound.Tone) error {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(t)
	return nil
}
