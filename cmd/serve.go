package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/file"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/pipeline"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/render"
	"github.com/jsphweid/midisynth/synth"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	soundFontPath string
	listenAddr    string
)

func init() {
	serveCmd.Flags().StringVar(&soundFontPath, "soundfont", "", "soundfont used for every request")
	serveCmd.Flags().StringVar(&listenAddr, "addr", constants.GetListenAddr(), "listen address")
	serveCmd.Flags().IntVar(&sampleRate, "sample-rate", constants.SampleRate, "output sample rate in Hz")
	serveCmd.Flags().Uint64Var(&padding, "padding", constants.PaddingMicros, "silence after each track in microseconds")
	serveCmd.Flags().BoolVar(&noEffects, "no-effects", false, "disable reverb and chorus")
	serveCmd.MarkFlagRequired("soundfont")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the renderer over HTTP",
	Long: `Serves POST /render, which takes a multipart form with a "midi" file
and a "config" TOML text and answers with a float WAV.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSampleRate(sampleRate); err != nil {
			return err
		}
		sf, err := synth.LoadSoundFont(soundFontPath)
		if err != nil {
			return err
		}
		factory := synth.NewFactory(sf, synth.Options{SampleRate: sampleRate, NoEffects: noEffects})
		s := &server{factory: factory, soundFont: soundFontPath, padding: padding}

		log.Printf("listening on %s", listenAddr)
		log.Fatal(http.ListenAndServe(listenAddr, s.handler()))
		return nil
	},
}

type server struct {
	factory   render.EngineFactory
	soundFont string
	padding   uint64
}

func (s *server) handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", s.handleRender).Methods("POST")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// memoryWriter keeps the mix so it can be encoded into the response.
type memoryWriter struct {
	samples    []float32
	sampleRate int
	channels   int
}

func (m *memoryWriter) Write(samples []float32, sampleRate int, channels int) error {
	m.samples = samples
	m.sampleRate = sampleRate
	m.channels = channels
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrNoAudio):
		return http.StatusUnprocessableEntity
	case errors.Is(err, midi.ErrUnsupportedTiming):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set("X-Request-Id", id)

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "Reading form failed"))
		return
	}

	midiFile, _, err := r.FormFile("midi")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("Missing midi file"))
		return
	}
	defer midiFile.Close()

	cfgText := r.FormValue("config")
	if cfgText == "" {
		writeError(w, http.StatusBadRequest, errors.New("Missing config"))
		return
	}
	cfg, err := config.Parse([]byte(cfgText))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "Parsing configuration failed"))
		return
	}

	smf, err := midi.ReadMidi(midiFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "Loading MIDI file failed"))
		return
	}

	mon := &progress.Silent{}
	out := &memoryWriter{}
	err = pipeline.Run(smf, cfg, s.factory, out, pipeline.Options{Padding: s.padding}, mon)
	for _, warning := range mon.Warnings() {
		log.Printf("[%s] warning: %s", id, warning)
	}
	if err != nil {
		log.Printf("[%s] render failed: %v", id, err)
		writeError(w, statusFor(err), err)
		return
	}

	body := file.EncodeWAVFloat32LE(out.samples, out.sampleRate, out.channels)
	if warnings := mon.Warnings(); len(warnings) > 0 {
		w.Header().Set("X-Midisynth-Warnings", strings.Join(warnings, "; "))
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", fmt.Sprint(len(body)))
	w.Write(body)
	log.Printf("[%s] rendered %d frames", id, len(out.samples)/out.channels)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.HealthResponse{
		Status:     "ok",
		SoundFont:  s.soundFont,
		SampleRate: s.factory.SampleRate(),
	})
}
