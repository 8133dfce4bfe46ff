package render

import (
	"fmt"

	"github.com/jsphweid/midisynth/mixer"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Job pairs a track with one of the instruments configured for it.
type Job struct {
	Name       string
	Track      model.PlayerTrack
	Instrument model.Instrument
}

// WorkerError reports a render job that failed or panicked.
type WorkerError struct {
	Name  string
	Cause error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("Rendering %s failed: %v", e.Name, e.Cause)
}

func (e *WorkerError) Unwrap() error {
	return e.Cause
}

// RenderAll renders every job on its own goroutine with its own engine and
// waits for all of them. The first failure is returned once every job has
// stopped; the others are not interrupted. Results are in job order.
func RenderAll(jobs []Job, factory EngineFactory, padding uint64, mon progress.Monitor) ([]model.RenderedTrack, error) {
	results := make([]model.RenderedTrack, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		job.Track = job.Track.Clone()
		rep := mon.Bar(job.Name)

		g.Go(func() (err error) {
			defer rep.Finish()
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Name: job.Name, Cause: errors.Errorf("panic: %v", r)}
				}
			}()

			engine, err := factory.NewEngine()
			if err != nil {
				return &WorkerError{Name: job.Name, Cause: err}
			}

			r := NewRenderer(engine, factory.SampleRate(), factory.BlockSize(), job.Track)
			left, right := r.Render(job.Instrument, padding, rep)

			results[i] = model.RenderedTrack{
				Name:        job.Name,
				Left:        left,
				Right:       right,
				GainFactors: mixer.NewGainFactors(job.Instrument.Gain, job.Instrument.Pan),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
