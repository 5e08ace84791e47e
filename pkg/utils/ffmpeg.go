package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration returns the duration of a media file in seconds.
func ProbeDuration(path string) (float64, error) {
	data, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe media file")
	}
	var info probeFormat
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return 0, errors.WithMessage(err, "Failed to decode probe output")
	}
	duration, err := strconv.ParseFloat(info.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to parse media duration")
	}
	return duration, nil
}

// GetVideoThumbnail grabs the first frame of a video as a jpg.
func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumbnail")
	}
	return outputPath, nil
}
