package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dispensa/internal/nlu"
	"dispensa/internal/query"
)

var dayFlag string

func init() {
	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "Show what is expiring in the inventory",
		Run:   runExpiring,
	}

	cmd.Flags().StringVarP(&dayFlag, "day", "d", "", "Restrict to \"today\" or \"tomorrow\"")

	RootCmd.AddCommand(cmd)
}

func runExpiring(cmd *cobra.Command, args []string) {
	kind := nlu.QueryGeneral
	switch dayFlag {
	case "":
	case "today":
		kind = nlu.QueryToday
	case "tomorrow":
		kind = nlu.QueryTomorrow
	default:
		exitErr("expiring", fmt.Errorf("unknown day %q", dayFlag))
	}

	res := newEngine().Answer(cmd.Context(), kind, time.Now())
	if res.Kind == query.KindError {
		exitErr("expiring", fmt.Errorf("%s", res.Summary))
	}

	fmt.Println(res.Message)
	fmt.Println("--", res.Summary)
}
