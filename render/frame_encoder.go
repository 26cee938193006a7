package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/pitch-fighter/engine"
)

// FrameEncoder streams snapshots as a stream of self-delimiting msgpack values for headless runs
type FrameEncoder struct {
	enc    *msgpack.Encoder
	every  uint64
	frames uint64
}

// NewFrameEncoder writes every n-th frame to w, n < 1 writes all frames
func NewFrameEncoder(w io.Writer, n int) *FrameEncoder {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return &FrameEncoder{
		enc:   enc,
		every: uint64(max(n, 1)),
	}
}

// Render encodes one snapshot
func (f *FrameEncoder) Render(snap engine.Snapshot) error {
	f.frames++
	if (f.frames-1)%f.every != 0 {
		return nil
	}
	if err := f.enc.Encode(&snap); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// DecodeFrames reads every snapshot from r
func DecodeFrames(r io.Reader) ([]engine.Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var out []engine.Snapshot
	for {
		var snap engine.Snapshot
		if err := dec.Decode(&snap); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("decode frame %d: %w", len(out), err)
		}
		out = append(out, snap)
	}
}
