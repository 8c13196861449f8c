package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denizsincar29/goerror"
	"github.com/jsphweid/movements/constants"
	"github.com/jsphweid/movements/instrument"
	"github.com/jsphweid/movements/midi"
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type playOptions struct {
	key    string
	root   int
	out    string
	in     string
	addr   string
	decay  time.Duration
	record string
}

var playOpts playOptions

func init() {
	f := playCmd.Flags()
	f.StringVar(&playOpts.key, "key", constants.GetKeyName(), "key the chord numerals refer to")
	f.IntVar(&playOpts.root, "root", constants.GetKeyRoot(), "pitch class of the key root, 0 = C")
	f.StringVar(&playOpts.out, "out", constants.GetMidiOut(), "MIDI output port (substring match, empty picks the first)")
	f.StringVar(&playOpts.in, "in", constants.GetMidiIn(), "MIDI pad controller input port (empty disables)")
	f.StringVar(&playOpts.addr, "addr", constants.GetHTTPAddr(), "HTTP listen address (empty disables)")
	f.DurationVar(&playOpts.decay, "decay", constants.GetDecayInterval(), "time between volume decay steps")
	f.StringVar(&playOpts.record, "record", "", "write the session to this MIDI file on exit")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays the instrument",
	Long: `Plays the instrument: touches and tilt arrive over HTTP and from an optional
MIDI pad controller, chords and bass go out to a MIDI port.`,
	Run: func(cmd *cobra.Command, args []string) {
		play(playOpts)
	},
}

func play(opts playOptions) {
	e := goerror.NewError(logger)

	key, err := scale.KeyByName(opts.key)
	e.Must(err, "Invalid key")

	drv, err := rtmididrv.New()
	e.Must(err, "Failed to start MIDI driver")
	defer drv.Close()

	out, err := midi.FindOut(drv, opts.out)
	e.Must(err, "Failed to find MIDI output")
	send, err := midi.OpenSender(out)
	e.Must(err, "Failed to open MIDI output")

	var rec *midi.Recorder
	if opts.record != "" {
		rec = midi.NewRecorder()
		send = rec.Wrap(send)
	}
	player := midi.NewPlayer(send, logger)

	inst := instrument.New(instrument.Config{
		Key:           key,
		KeyRoot:       model.Pitch(opts.root),
		DecayInterval: opts.decay,
	}, player, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := inst.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("instrument stopped", "err", err)
		}
	}()

	if opts.in != "" {
		in, err := midi.FindIn(drv, opts.in)
		e.Must(err, "Failed to find MIDI input")
		stopListening, err := midi.Listen(in, inst.Pads(ctx), logger)
		e.Must(err, "Failed to listen to MIDI input")
		defer stopListening()
	}

	var srv *http.Server
	if opts.addr != "" {
		srv = &http.Server{Addr: opts.addr, Handler: NewRouter(inst)}
		go func() {
			logger.Info("http: listening", "addr", opts.addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				e.Must(err, "HTTP server failed")
			}
		}()
	}

	logger.Info("playing", "key", opts.key, "root", opts.root, "out", out.String())
	<-ctx.Done()
	logger.Info("stopping")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http: shutdown", "err", err)
		}
	}
	<-stopped
	if err := player.AllNotesOff(); err != nil {
		logger.Warn("midi: all notes off", "err", err)
	}
	if rec != nil {
		if err := rec.WriteFile(opts.record); err != nil {
			logger.Error("record: write failed", "path", opts.record, "err", err)
			return
		}
		logger.Info("record: saved", "path", opts.record)
	}
}
