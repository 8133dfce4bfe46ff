package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jsphweid/midisynth/model"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

var (
	ErrMissingBank   = errors.New("Missing bank value")
	ErrMissingPreset = errors.New("Missing preset value")
	ErrOutOfRange    = errors.New("Value out of range")
)

// Setting is one instrument entry as written in the file. Bank and preset
// are required; everything else has a default. Values of the wrong type
// count as absent.
type Setting struct {
	Bank      *int64
	Preset    *int64
	Transpose *int64
	Pan       *float64
	Gain      *float64
}

// Config maps track names to the instruments they are rendered with.
type Config struct {
	SoundFont   string
	Instruments map[string][]Setting

	dir string
}

type document struct {
	SoundFont   string                    `toml:"soundfont"`
	Instruments map[string]toml.Primitive `toml:"instr"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading configuration file %s failed", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Parsing configuration file %s failed", path)
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

func Parse(data []byte) (*Config, error) {
	var doc document
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !md.IsDefined("instr") {
		return nil, errors.New("Invalid configuration: No instruments specified")
	}

	c := &Config{SoundFont: doc.SoundFont, Instruments: make(map[string][]Setting)}
	for name, prim := range doc.Instruments {
		// anything but an array leaves the track without instruments
		var entries []interface{}
		if err := md.PrimitiveDecode(prim, &entries); err != nil {
			continue
		}
		settings := make([]Setting, 0, len(entries))
		for _, entry := range entries {
			table, _ := entry.(map[string]interface{})
			settings = append(settings, newSetting(table))
		}
		c.Instruments[name] = settings
	}
	return c, nil
}

func newSetting(table map[string]interface{}) Setting {
	return Setting{
		Bank:      integer(table["bank"]),
		Preset:    integer(table["preset"]),
		Transpose: integer(table["tsp"]),
		Pan:       number(table["pan"]),
		Gain:      number(table["gain"]),
	}
}

func integer(v interface{}) *int64 {
	i, ok := v.(int64)
	if !ok {
		return nil
	}
	return &i
}

// number accepts integers and floats alike.
func number(v interface{}) *float64 {
	switch n := v.(type) {
	case int64:
		f := float64(n)
		return &f
	case float64:
		return &n
	}
	return nil
}

// SoundFontPath resolves the soundfont reference. A leading ~ is the home
// directory; relative paths are relative to the configuration file.
func (c *Config) SoundFontPath() (string, error) {
	if c.SoundFont == "" {
		return "", errors.New("Invalid configuration: No soundfont specified")
	}
	path, err := homedir.Expand(c.SoundFont)
	if err != nil {
		return "", errors.Wrapf(err, "Invalid configuration: soundfont %s", c.SoundFont)
	}
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	return path, nil
}

func (c *Config) Lookup(trackName string) ([]Setting, bool) {
	settings, ok := c.Instruments[trackName]
	return settings, ok
}

func (s Setting) Instrument() (model.Instrument, error) {
	var instr model.Instrument

	if s.Bank == nil {
		return instr, ErrMissingBank
	}
	if *s.Bank < 0 || *s.Bank > math.MaxUint8 {
		return instr, errors.Wrapf(ErrOutOfRange, "bank %d", *s.Bank)
	}
	if s.Preset == nil {
		return instr, ErrMissingPreset
	}
	if *s.Preset < 0 || *s.Preset > math.MaxUint8 {
		return instr, errors.Wrapf(ErrOutOfRange, "preset %d", *s.Preset)
	}
	instr.Bank = uint8(*s.Bank)
	instr.Preset = uint8(*s.Preset)

	if s.Transpose != nil {
		if *s.Transpose < math.MinInt8 || *s.Transpose > math.MaxInt8 {
			return instr, errors.Wrapf(ErrOutOfRange, "transpose %d", *s.Transpose)
		}
		instr.Transpose = int8(*s.Transpose)
	}
	if s.Pan != nil {
		instr.Pan = float32(*s.Pan)
	}
	if s.Gain != nil {
		instr.Gain = float32(*s.Gain)
	}
	return instr, nil
}
