package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	hm "github.com/sprsquish/airplus/pkg"
	"github.com/sprsquish/airplus/pkg/endpoint"
	"github.com/sprsquish/airplus/pkg/looper"
	"github.com/sprsquish/airplus/pkg/store"
)

// the global level gates output so --debug reaches every child logger
var log = hm.NewLogger(zerolog.DebugLevel)

var mainCmd = &cobra.Command{
	Use:           "airplus",
	Short:         "Indoor air quality and room readiness dashboard",
	Run:           run,
	SilenceErrors: true,
}

var (
	loopRunners []*hm.LoopRunner
	dash        hm.Handler
	influx      *store.InfluxClient
	storage     *store.Latest
	httpAddr    string
	logStore    bool
	debug       bool
)

func init() {
	flags := mainCmd.Flags()
	flags.StringVar(&httpAddr, "http.addr", ":7777", "Listen address")
	flags.BoolVar(&logStore, "store.log", false, "Log writes instead of sending them to influxdb")
	mainCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")

	influx = store.NewInfluxClient(flags, &log)
	storage = store.NewLatest(influx)

	f := &hm.RunnerFactory{
		Flags:  flags,
		Client: hm.NewHttpClient(),
		Logger: &log,
		Store:  storage,
	}

	loopRunners = []*hm.LoopRunner{
		f.MakeLooper("awair", 5*time.Minute, looper.NewAwair),
		f.MakeLooper("purpleair", 10*time.Second, looper.NewPurpleAir),
		f.MakeLooper("particle", 1*time.Minute, looper.NewParticle),
	}

	dash = f.MakeHandler("dashboard", endpoint.NewDashboard)

	mainCmd.AddCommand(cardCmd)
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("failed to start")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGINT)

	ctx, done := context.WithCancel(context.Background())
	defer done()

	if logStore {
		storage.SetBackend(store.NewLogStore(&log))
	}
	if err := storage.Init(); err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer influx.Close()

	if err := dash.Init(); err != nil {
		log.Fatal().Err(err).Msg("dashboard init failed")
	}

	var wg sync.WaitGroup
	for _, runner := range loopRunners {
		wg.Add(1)
		go func(runner *hm.LoopRunner) {
			defer wg.Done()
			runner.Run(ctx, storage)
		}(runner)
	}

	server := http.Server{
		Addr:              httpAddr,
		Handler:           dash,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", httpAddr).Msg("starting listener")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("failed to start listener")
		}
	}()

	<-stopChan

	log.Info().Msg("shutting down")
	server.Close()
	done()

	log.Info().Msg("waiting for pollers to stop")
	wg.Wait()

	log.Info().Msg("stopped")
}
