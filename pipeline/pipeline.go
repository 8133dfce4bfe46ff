package pipeline

import (
	"fmt"

	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/mixer"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/render"
	"github.com/jsphweid/midisynth/sequencer"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoAudio = errors.New("no audio was produced")

// Writer receives the final interleaved buffer.
type Writer interface {
	Write(samples []float32, sampleRate int, channels int) error
}

type Options struct {
	// silence rendered after each track, in microseconds
	Padding uint64
}

func DefaultOptions() Options {
	return Options{Padding: constants.PaddingMicros}
}

// Run sequences s, renders every track that has instruments configured,
// mixes the results and hands them to w. w is not called when nothing was
// rendered.
func Run(s *smf.SMF, cfg *config.Config, factory render.EngineFactory, w Writer, opts Options, mon progress.Monitor) error {
	mon.Phase(1, 3, "Sequencing MIDI file...")
	tracks, err := sequencer.Play(s, mon.Bar("sequencing"))
	if err != nil {
		return err
	}

	mon.Phase(2, 3, "Rendering tracks...")
	jobs := MatchJobs(tracks, cfg, mon)
	if len(jobs) == 0 {
		return ErrNoAudio
	}
	rendered, err := render.RenderAll(jobs, factory, opts.Padding, mon)
	if err != nil {
		return err
	}

	mon.Phase(3, 3, "Mixing...")
	mixed := mixer.MixStereo(rendered, mon.Bar("mixing"))
	mon.Wait()

	return w.Write(mixed, factory.SampleRate(), constants.Channels)
}

// MatchJobs pairs every named track with each of its configured
// instruments. Unusable instruments and unconfigured tracks are reported
// through mon and skipped. Track 0 usually only holds tempo and meta
// events, so it is skipped without a warning.
func MatchJobs(tracks []model.PlayerTrack, cfg *config.Config, mon progress.Monitor) []render.Job {
	var jobs []render.Job
	for idx, track := range tracks {
		if track.Name == nil {
			continue
		}
		name := *track.Name

		settings, ok := cfg.Lookup(name)
		if !ok {
			if idx != 0 {
				mon.Warn(fmt.Sprintf("No instruments defined for %s, skipping track!", name))
			}
			continue
		}

		for _, setting := range settings {
			instr, err := setting.Instrument()
			if err != nil {
				mon.Warn(fmt.Sprintf("%v for %s, skipping track!", err, name))
				continue
			}
			jobs = append(jobs, render.Job{Name: name, Track: track, Instrument: instr})
		}
	}
	return jobs
}
