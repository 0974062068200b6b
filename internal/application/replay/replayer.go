package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/arena/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances.
// It returns false once every frame has been played.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.toInput(), true
}

// GetInput returns the next recorded input, or an idle input after the end
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// DT returns the recorded step size
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
