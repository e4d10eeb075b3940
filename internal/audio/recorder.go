package audio

import (
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 16000
	frameSize  = 320 // 20ms

	silenceThreshRMS = 0.015
	silenceDuration  = 600 * time.Millisecond
	maxUtteranceSec  = 10
)

// Recorder captures single utterances from the default input device as
// 16 kHz mono float32 PCM, which is what the transcriber wants.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

// Record captures one utterance. Buffering starts once speech is detected
// and ends on sustained silence, on the stop channel closing, or at the
// max utterance length. The stream is fully released before Record
// returns, whichever way it ends. A closed stop channel yields whatever
// was captured so far, possibly nothing.
func (r *Recorder) Record(stop <-chan struct{}) ([]float32, error) {
	buf := make([]float32, frameSize)
	out := make([]float32, 0, sampleRate*3)

	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	var (
		speaking      bool
		silenceFrames int
	)

	const frameMs = frameSize * 1000 / sampleRate
	maxFrames := maxUtteranceSec * sampleRate / frameSize

	for i := 0; i < maxFrames; i++ {
		select {
		case <-stop:
			return out, nil
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, err
		}

		rms := frameRMS(buf)

		if rms > silenceThreshRMS {
			speaking = true
			silenceFrames = 0
			out = append(out, buf...)
			continue
		}

		if speaking {
			silenceFrames++
			if time.Duration(silenceFrames*frameMs)*time.Millisecond >= silenceDuration {
				break
			}
			out = append(out, buf...)
		}
	}

	return out, nil
}

func frameRMS(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
