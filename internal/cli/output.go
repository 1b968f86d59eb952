package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
)

// jsonBuffer is the JSON form of an encoded particle set.
type jsonBuffer struct {
	Width             int       `json:"width"`
	Height            int       `json:"height"`
	FloatsPerParticle int       `json:"floatsPerParticle"`
	Count             int       `json:"count"`
	Data              []float32 `json:"data"`
}

// writeOutput writes set in the given format to path, or to the command's
// stdout when path is empty.
func writeOutput(cmd *cobra.Command, set *particles.Set, format, path string) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}
	return encode(w, set, format)
}

func encode(w io.Writer, set *particles.Set, format string) error {
	switch format {
	case formatBin:
		if _, err := set.WriteTo(w); err != nil {
			return fmt.Errorf("write particles: %w", err)
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		buf := jsonBuffer{
			Width:             set.Width,
			Height:            set.Height,
			FloatsPerParticle: particles.FloatsPerParticle,
			Count:             set.Len(),
			Data:              set.AppendEncoded(make([]float32, 0, set.Len()*particles.FloatsPerParticle)),
		}
		if err := enc.Encode(buf); err != nil {
			return fmt.Errorf("write particles: %w", err)
		}
		return nil
	default:
		return validateFormat(format)
	}
}
