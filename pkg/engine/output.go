package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ChannelReport describes one channel's expression.
type ChannelReport struct {
	Name  string `json:"name"`
	Expr  string `json:"expr"`
	Nodes int    `json:"nodes"`
	Depth int    `json:"depth"`
}

// Report summarizes one generated image. Its JSON form doubles as a
// recipe: ReadRecipe recovers the channels from it.
type Report struct {
	Config    Config          `json:"config"`
	Seed      int64           `json:"seed"`
	Output    string          `json:"output,omitempty"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Pixels    int64           `json:"pixels"`
	Channels  []ChannelReport `json:"channels"`
	Elapsed   time.Duration   `json:"elapsed_ns"`
	Timestamp time.Time       `json:"timestamp"`
}

func newReport(cfg Config, seed int64, ch Channels, width, height int) Report {
	r := Report{
		Config:    cfg,
		Seed:      seed,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().UTC(),
	}
	for i, t := range ch.Trees() {
		r.Channels = append(r.Channels, ChannelReport{
			Name:  ChannelNames[i],
			Expr:  t.String(),
			Nodes: t.NodeCount(),
			Depth: t.Depth(),
		})
	}
	return r
}

// WriteTextReport writes a report in human-readable format.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "========== RECURSIVE ART ==========")
	if r.Output != "" {
		fmt.Fprintf(w, "Output:    %s\n", r.Output)
	}
	fmt.Fprintf(w, "Size:      %dx%d (%d pixels)\n", r.Width, r.Height, r.Pixels)
	fmt.Fprintf(w, "Seed:      %d\n", r.Seed)
	fmt.Fprintf(w, "Pool:      %s\n", r.Config.Pool)
	fmt.Fprintf(w, "Depth:     [%d, %d], extend %.2f\n", r.Config.MinDepth, r.Config.MaxDepth, r.Config.Extend)
	if r.Config.Strategy != "" {
		fmt.Fprintf(w, "Strategy:  %s x%d\n", r.Config.Strategy, r.Config.Variations)
	}
	fmt.Fprintf(w, "Elapsed:   %s\n", r.Elapsed.Round(time.Millisecond))
	for _, c := range r.Channels {
		fmt.Fprintf(w, "%-6s %3d nodes, depth %d | %s\n", c.Name+":", c.Nodes, c.Depth, c.Expr)
	}
	fmt.Fprintln(w, "===================================")
}

// WriteJSONReport writes the report as indented JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadRecipe decodes a JSON report and parses its channel expressions.
func ReadRecipe(rd io.Reader) (Channels, Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Channels{}, Report{}, fmt.Errorf("engine: decoding recipe: %w", err)
	}
	exprs := make(map[string]string, len(r.Channels))
	for _, c := range r.Channels {
		exprs[c.Name] = c.Expr
	}
	for _, name := range ChannelNames {
		if _, ok := exprs[name]; !ok {
			return Channels{}, r, fmt.Errorf("engine: recipe has no %s channel", name)
		}
	}
	ch, err := ParseChannels(exprs["red"], exprs["green"], exprs["blue"])
	if err != nil {
		return Channels{}, r, err
	}
	return ch, r, nil
}
