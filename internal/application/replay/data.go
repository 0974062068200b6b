package replay

import "github.com/younwookim/arena/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	FI bool `json:"fi,omitempty"` // Fire
	TP bool `json:"tp,omitempty"` // TogglePause
	TS bool `json:"ts,omitempty"` // ToggleShop
	RS bool `json:"rs,omitempty"` // Restart
	TM bool `json:"tm,omitempty"` // ToggleMute
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(n int, in system.InputState) FrameInput {
	return FrameInput{
		F:  n,
		U:  in.Up,
		D:  in.Down,
		L:  in.Left,
		R:  in.Right,
		MX: in.MouseX,
		MY: in.MouseY,
		FI: in.Fire,
		TP: in.TogglePause,
		TS: in.ToggleShop,
		RS: in.Restart,
		TM: in.ToggleMute,
	}
}

func (fi FrameInput) toInput() system.InputState {
	return system.InputState{
		Up:          fi.U,
		Down:        fi.D,
		Left:        fi.L,
		Right:       fi.R,
		MouseX:      fi.MX,
		MouseY:      fi.MY,
		Fire:        fi.FI,
		TogglePause: fi.TP,
		ToggleShop:  fi.TS,
		Restart:     fi.RS,
		ToggleMute:  fi.TM,
	}
}
