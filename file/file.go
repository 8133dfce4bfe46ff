package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/midisynth/bucket"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatFloat32 Format = "f32"
	FormatS16     Format = "s16"
	FormatS24     Format = "s24"
	FormatS32     Format = "s32"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatFloat32, FormatS16, FormatS24, FormatS32:
		return f, nil
	}
	return "", errors.Errorf("invalid output format %q (expected f32|s16|s24|s32)", s)
}

func (f Format) bitDepth() int {
	switch f {
	case FormatS16:
		return 16
	case FormatS24:
		return 24
	case FormatS32:
		return 32
	}
	return 32
}

// Writer stores the mix as a WAV file at Path, which may also be an
// s3://bucket/key URL.
type Writer struct {
	Path   string
	Format Format
}

func (w *Writer) Write(samples []float32, sampleRate int, channels int) error {
	if bucket.IsURL(w.Path) {
		loc, err := bucket.ParseURL(w.Path)
		if err != nil {
			return err
		}
		return w.upload(loc, samples, sampleRate, channels)
	}

	// write next to the target and rename, so a failed run leaves no
	// truncated file behind
	dir, base := filepath.Split(w.Path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "Writing output WAV file %s failed", w.Path)
	}
	defer os.Remove(tmp)
	defer f.Close()

	if err := w.encode(f, samples, sampleRate, channels); err != nil {
		return errors.Wrapf(err, "Writing output WAV file %s failed", w.Path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "Writing output WAV file %s failed", w.Path)
	}
	if err := os.Rename(tmp, w.Path); err != nil {
		return errors.Wrapf(err, "Writing output WAV file %s failed", w.Path)
	}
	return nil
}

func (w *Writer) encode(out io.WriteSeeker, samples []float32, sampleRate int, channels int) error {
	if w.Format == FormatFloat32 || w.Format == "" {
		_, err := out.Write(EncodeWAVFloat32LE(samples, sampleRate, channels))
		return errors.WithStack(err)
	}
	return EncodePCM(out, samples, sampleRate, channels, w.Format.bitDepth())
}

func (w *Writer) upload(loc bucket.Location, samples []float32, sampleRate int, channels int) error {
	var body io.Reader
	if w.Format == FormatFloat32 || w.Format == "" {
		body = bytes.NewReader(EncodeWAVFloat32LE(samples, sampleRate, channels))
	} else {
		// the PCM encoder seeks back to patch the header, so it needs a file
		f, err := os.CreateTemp("", "midisynth-*.wav")
		if err != nil {
			return errors.WithStack(err)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		if err := w.encode(f, samples, sampleRate, channels); err != nil {
			return errors.Wrapf(err, "Encoding output WAV for %s failed", loc)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return errors.WithStack(err)
		}
		body = f
	}
	return bucket.Upload(context.Background(), loc, body, "audio/wav")
}
