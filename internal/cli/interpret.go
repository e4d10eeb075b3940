package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dispensa/internal/nlu"
)

func init() {
	cmd := &cobra.Command{
		Use:   "interpret <utterance>",
		Short: "Interpret a typed utterance",
		Args:  cobra.MinimumNArgs(1),
		Run:   runInterpret,
	}

	RootCmd.AddCommand(cmd)
}

func runInterpret(cmd *cobra.Command, args []string) {
	utterance := strings.Join(args, " ")
	interpret(cmd, utterance)
}

func interpret(cmd *cobra.Command, utterance string) {
	in := newInterpreter()
	intent := in.classifier.Classify(utterance)

	if intent.Kind == nlu.IntentQuery {
		res := newEngine().Answer(cmd.Context(), intent.Query, time.Now())
		fmt.Println(res.Message)
		fmt.Println("--", res.Summary)
		return
	}

	draft := in.builder.Build(utterance)
	if draft.Empty() {
		fmt.Println("nothing recognized")
		return
	}

	b, _ := json.MarshalIndent(draft, "", "  ")
	fmt.Println(string(b))
}
