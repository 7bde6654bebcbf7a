package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lightbake/internal/stitch"
	"github.com/Faultbox/lightbake/pkg/math"
)

// seamFile is the YAML layout of a detected-seams list. All coordinates are
// lightmap UVs in [0,1].
type seamFile struct {
	Seams []seamEntry `yaml:"seams"`
}

type seamEntry struct {
	From      [2]float32 `yaml:"from"`
	To        [2]float32 `yaml:"to"`
	OtherFrom [2]float32 `yaml:"other_from"`
	OtherTo   [2]float32 `yaml:"other_to"`
}

// loadSeams reads a YAML seam list file.
func loadSeams(path string) (stitch.SeamVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file seamFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	seams := make(stitch.SeamVector, 0, len(file.Seams))
	for _, entry := range file.Seams {
		seams = append(seams, stitch.Seam{
			Positions: [2]math.Vec2{
				{X: entry.From[0], Y: entry.From[1]},
				{X: entry.To[0], Y: entry.To[1]},
			},
			OtherPositions: [2]math.Vec2{
				{X: entry.OtherFrom[0], Y: entry.OtherFrom[1]},
				{X: entry.OtherTo[0], Y: entry.OtherTo[1]},
			},
		})
	}
	return seams, nil
}
