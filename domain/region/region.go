package region

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/soocke/box-annotator/domain/annotation"
)

// seedDocument is the object form of a seed file.
type seedDocument struct {
	Regions []annotation.Region `json:"regions"`
}

// DecodeSeeds parses seed regions. Both a bare JSON array and an object with a
// "regions" field are accepted.
func DecodeSeeds(r io.Reader) ([]annotation.Region, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var out []annotation.Region
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var doc seedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Regions, nil
}

// LoadSeeds reads seed regions from path. An empty path yields no seeds.
func LoadSeeds(path string) ([]annotation.Region, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seeds: %w", err)
	}
	defer f.Close()
	seeds, err := DecodeSeeds(f)
	if err != nil {
		return nil, fmt.Errorf("decode seeds %s: %w", path, err)
	}
	return seeds, nil
}

// Trial is the record written when a session ends. RT is the session length
// in milliseconds.
type Trial struct {
	Image     string              `json:"image"`
	Prompt    string              `json:"prompt,omitempty"`
	StartedAt time.Time           `json:"started_at"`
	RT        int64               `json:"rt"`
	Regions   []annotation.Region `json:"regions"`
}

// NewTrial builds a trial record for a session that ran from started to ended.
func NewTrial(image, prompt string, started, ended time.Time, regions []annotation.Region) Trial {
	if regions == nil {
		regions = []annotation.Region{}
	}
	rt := ended.Sub(started).Milliseconds()
	if rt < 0 {
		rt = 0
	}
	return Trial{Image: image, Prompt: prompt, StartedAt: started, RT: rt, Regions: regions}
}

// Write encodes the trial as indented JSON.
func (t Trial) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Save writes the trial to path, replacing any existing file.
func (t Trial) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results: %w", err)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write results: %w", err)
	}
	return f.Close()
}
