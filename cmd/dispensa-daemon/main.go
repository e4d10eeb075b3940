package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"dispensa/internal/inventory"
	"dispensa/internal/ipc"
	"dispensa/internal/nlu"
	"dispensa/internal/notify"
	"dispensa/internal/proxy"
	"dispensa/internal/query"
	"dispensa/internal/render"
	"dispensa/internal/session"
	"dispensa/internal/speech"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	apiBase := cli.StringP("api", "a", "http://localhost:5000", "Inventory API base URL")
	hubURL := cli.StringP("hub", "u", "", "Render hub websocket URL (empty: log only)")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy for the inventory API (empty: direct)")
	modelPath := cli.StringP("model", "m", "models/ggml-base.bin", "Whisper model path")
	locale := cli.StringP("locale", "L", "it-IT", "Recognition locale")
	cuePath := cli.StringP("cue", "c", "beep.mp3", "Listening cue sound")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)
	if env := os.Getenv("DISPENSA_API"); env != "" && *apiBase == "http://localhost:5000" {
		*apiBase = env
	}
	if env := os.Getenv("DISPENSA_WHISPER_MODEL"); env != "" {
		*modelPath = env
	}

	var httpClient *http.Client
	if *proxyAddr != "" {
		var err error
		httpClient, err = proxy.NewSocksClient(*proxyAddr, 15*time.Second)
		if err != nil {
			log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
		log.Debug("Loaded proxy")
	}

	items := inventory.NewClient(*apiBase, httpClient)

	// A missing microphone or model leaves the capability absent: every
	// session start then reports capability-unavailable instead of
	// crashing the daemon.
	var recognizer session.Recognizer
	rec, err := speech.New(*modelPath)
	if err != nil {
		log.Warn("Speech capability unavailable", "err", err)
	} else {
		recognizer = rec
		defer rec.Close()
		log.Debug("Loaded recognizer", "model", *modelPath)
	}

	var emitter session.Emitter = render.Log{}
	if *hubURL != "" {
		surface, err := render.Dial(*hubURL, 2*time.Second)
		if err != nil {
			log.Error("Failed to dial render hub", "url", *hubURL, "err", err)
			os.Exit(1)
		}
		defer surface.Close()
		emitter = surface
	}

	loc := nlu.Italian()
	extractor := nlu.NewExtractor(loc)

	cfg := session.DefaultConfig()
	cfg.Locale = *locale

	controller := session.New(cfg, session.Deps{
		Recognizer: recognizer,
		Classifier: nlu.NewClassifier(loc),
		Builder:    nlu.NewBuilder(loc, extractor),
		Engine:     query.NewEngine(items, query.ItalianMessages()),
		Submitter:  items,
		Emitter:    emitter,
	})

	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case ipc.CmdTrigger:
			if err := notify.Beep(*cuePath); err != nil {
				log.Debug("No listening cue", "err", err)
			}
			if err := controller.Start(); err != nil {
				log.Warn("Session not started", "err", err)
			}
		case ipc.CmdCancel:
			controller.Cancel()
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	log.Info("Boot up - successful")

	select {}
}
