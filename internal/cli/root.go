// Package cli implements the dispensa offline commands: interpreting typed
// utterances, transcribing audio files and checking what expires, all
// without the daemon running.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dispensa/internal/inventory"
	"dispensa/internal/nlu"
	"dispensa/internal/query"
)

var (
	apiBase    string
	localeFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dispensa",
	Short: "Voice-command interpreter for the food inventory",
	Long:  "Interprets utterances about groceries: either a new item to register or a question about what is expiring.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&apiBase, "api", "a", "", "Inventory API base URL (default: $DISPENSA_API or http://localhost:5000)")
	RootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "L", "it-IT", "Utterance locale")
}

func getAPIBase() string {
	if apiBase != "" {
		return apiBase
	}
	if env := os.Getenv("DISPENSA_API"); env != "" {
		return env
	}
	return "http://localhost:5000"
}

type interpreter struct {
	classifier *nlu.Classifier
	builder    *nlu.Builder
}

func newInterpreter() interpreter {
	loc := nlu.Italian()
	x := nlu.NewExtractor(loc)
	return interpreter{
		classifier: nlu.NewClassifier(loc),
		builder:    nlu.NewBuilder(loc, x),
	}
}

func newEngine() *query.Engine {
	client := inventory.NewClient(getAPIBase(), nil)
	return query.NewEngine(client, query.ItalianMessages())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
