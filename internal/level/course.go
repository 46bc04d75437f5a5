package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Hole describes one hole of a course: where its chunk data lives in the
// course data file, plus tee and cup placement.
type Hole struct {
	Name         string `yaml:"name"`
	Par          int    `yaml:"par"`
	TeeMaskLayer int    `yaml:"tee_mask_layer"`
	TeeX         int    `yaml:"tee_x"`
	TeeY         int    `yaml:"tee_y"`
	HoleX        int    `yaml:"hole_x"`
	HoleY        int    `yaml:"hole_y"`
	Offset       int64  `yaml:"offset"`
	NumChunks    int    `yaml:"num_chunks"`
}

// Course is a baked course: a YAML index next to a binary chunk data file.
type Course struct {
	Name     string `yaml:"name"`
	DataFile string `yaml:"data_file"`
	Holes    []Hole `yaml:"holes"`

	dir string
}

// LoadCourse reads a course index from disk.
func LoadCourse(indexPath string) (*Course, error) {
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read course index: %w", err)
	}
	var c Course
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("level: cannot parse course index: %w", err)
	}
	if len(c.Holes) == 0 {
		return nil, fmt.Errorf("level: course %q has no holes", indexPath)
	}
	c.dir = filepath.Dir(indexPath)
	return &c, nil
}

// Save writes the course index as YAML.
func (c *Course) Save(indexPath string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("level: cannot marshal course index: %w", err)
	}
	if err := os.WriteFile(indexPath, raw, 0o644); err != nil {
		return fmt.Errorf("level: cannot write course index: %w", err)
	}
	return nil
}

// LoadAllHoles decodes every hole of the course into playable form,
// reading the data file once.
func (c *Course) LoadAllHoles() ([]CourseHole, error) {
	f, err := os.Open(filepath.Join(c.dir, c.DataFile))
	if err != nil {
		return nil, fmt.Errorf("level: cannot open course data: %w", err)
	}
	defer f.Close()
	holes := make([]CourseHole, len(c.Holes))
	for i, meta := range c.Holes {
		cd, err := DecodeChunks(f, meta.Offset, meta.NumChunks)
		if err != nil {
			return nil, fmt.Errorf("level: hole %d (%s): %w", i+1, meta.Name, err)
		}
		holes[i] = CourseHole{Meta: meta, Data: cd}
	}
	return holes, nil
}

// LoadHole reads and decodes the chunk data for hole i.
func (c *Course) LoadHole(i int) (*ChunkData, error) {
	if i < 0 || i >= len(c.Holes) {
		return nil, fmt.Errorf("level: hole %d out of range", i)
	}
	f, err := os.Open(filepath.Join(c.dir, c.DataFile))
	if err != nil {
		return nil, fmt.Errorf("level: cannot open course data: %w", err)
	}
	defer f.Close()
	return DecodeChunks(f, c.Holes[i].Offset, c.Holes[i].NumChunks)
}
