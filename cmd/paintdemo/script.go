package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/paint"
)

// script is a recorded editing session.
//
//	strength = 0.8
//	linear = true
//
//	[brush]
//	color = "#1E90FF"
//	radius = 6
//
//	[[step]]
//	op = "stroke"
//	points = [[10, 10], [120, 80]]
//
//	[[step]]
//	op = "undo"
type script struct {
	Strength     *float64 `toml:"strength"`
	Linear       bool     `toml:"linear"`
	HistoryLimit int      `toml:"history_limit"`
	Brush        brushCfg `toml:"brush"`
	Steps        []step   `toml:"step"`
}

type brushCfg struct {
	Color  string `toml:"color"`
	Radius int    `toml:"radius"`
}

// step is one scripted action. Color and Radius, when set, change the brush
// before a stroke and stay in effect afterwards, like a tool picker.
type step struct {
	Op     string       `toml:"op"`
	Color  string       `toml:"color"`
	Radius int          `toml:"radius"`
	Points [][2]float64 `toml:"points"`
}

// Script operations.
const (
	opStroke = "stroke"
	opUndo   = "undo"
	opReset  = "reset"
)

type replayStats struct {
	strokes int
	undos   int
	resets  int
	changed int
}

func defaultScript() *script {
	return &script{}
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := parseScript(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseScript(data string) (*script, error) {
	var s script
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("decode script: unknown keys %v", undec)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *script) validate() error {
	for i, st := range s.Steps {
		switch st.Op {
		case opStroke:
			if len(st.Points) == 0 {
				return fmt.Errorf("step %d: stroke without points", i)
			}
		case opUndo, opReset:
		default:
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// options maps the script header onto session options.
func (s *script) options() []paint.SessionOption {
	opts := []paint.SessionOption{
		paint.WithLinearBlend(s.Linear),
		paint.WithHistoryLimit(s.HistoryLimit),
	}
	if s.Strength != nil {
		opts = append(opts, paint.WithBlendStrength(*s.Strength))
	}
	b := paint.NewBrush()
	if s.Brush.Color != "" {
		b.SetColorHex(s.Brush.Color)
	}
	if s.Brush.Radius != 0 {
		b.SetRadius(s.Brush.Radius)
	}
	return append(opts, paint.WithBrush(b))
}

// replay feeds every step into the session as pointer events.
func (s *script) replay(sess *paint.Session) (replayStats, error) {
	var st replayStats
	before := sess.ExportBuffer()

	for i, step := range s.Steps {
		switch step.Op {
		case opStroke:
			if step.Color != "" {
				sess.SetBrushColorHex(step.Color)
			}
			if step.Radius != 0 {
				sess.SetBrushRadius(step.Radius)
			}
			if err := stroke(sess, step.Points); err != nil {
				return st, fmt.Errorf("step %d: %w", i, err)
			}
			st.strokes++
		case opUndo:
			ok, err := sess.Undo()
			if err != nil {
				return st, fmt.Errorf("step %d: %w", i, err)
			}
			if ok {
				st.undos++
			}
		case opReset:
			if err := sess.Reset(); err != nil {
				return st, fmt.Errorf("step %d: %w", i, err)
			}
			st.resets++
		}
	}

	after := sess.ExportBuffer()
	for i := range after {
		if after[i] != before[i] {
			st.changed++
		}
	}
	return st, nil
}

// stroke presses at the first point, drags through the rest and releases at
// the last one. Points are clamped to the buffer first.
func stroke(sess *paint.Session, pts [][2]float64) error {
	buf := sess.Buffer()
	clampPt := func(p [2]float64) paint.Point {
		return paint.Pt(
			clampf(p[0], 0, float64(buf.Width()-1)),
			clampf(p[1], 0, float64(buf.Height()-1)),
		)
	}

	if err := sess.OnPointerDown(clampPt(pts[0])); err != nil {
		return err
	}
	for _, p := range pts[1:] {
		sess.OnPointerMove(clampPt(p))
	}
	return sess.OnPointerUp(clampPt(pts[len(pts)-1]))
}

func clampf(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
