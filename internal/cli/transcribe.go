package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dispensa/pkg/audioconv"
	"dispensa/pkg/stt"
)

var (
	modelPath     string
	thenInterpret bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a wav/mp3/ogg recording",
		Args:  cobra.ExactArgs(1),
		Run:   runTranscribe,
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Whisper model path (default: $DISPENSA_WHISPER_MODEL)")
	cmd.Flags().BoolVarP(&thenInterpret, "interpret", "i", false, "Interpret the transcript as well")

	RootCmd.AddCommand(cmd)
}

func runTranscribe(cmd *cobra.Command, args []string) {
	model := modelPath
	if model == "" {
		model = os.Getenv("DISPENSA_WHISPER_MODEL")
	}
	if model == "" {
		exitErr("transcribe", fmt.Errorf("no whisper model: set --model or $DISPENSA_WHISPER_MODEL"))
	}

	pcm, err := audioconv.DecodeFile(args[0])
	if err != nil {
		exitErr("decode audio", err)
	}

	tr, err := stt.NewTranscriber(model)
	if err != nil {
		exitErr("load model", err)
	}
	defer tr.Close()

	lang := strings.ToLower(strings.SplitN(localeFlag, "-", 2)[0])
	res, err := tr.TranscribePCM(cmd.Context(), pcm, stt.Options{Language: lang})
	if err != nil {
		exitErr("transcribe", err)
	}

	fmt.Println(res.Text)

	if thenInterpret && res.Text != "" {
		fmt.Println()
		interpret(cmd, res.Text)
	}
}
