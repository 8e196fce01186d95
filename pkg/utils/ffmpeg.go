package utils

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration reads the container duration of a local media file in seconds.
func ProbeDuration(path string) (float64, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe failed")
	}
	var meta probeFormat
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return 0, errors.WithMessage(err, "ffprobe output parse failed")
	}
	duration, err := strconv.ParseFloat(meta.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe duration parse failed")
	}
	return duration, nil
}
