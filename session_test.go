package paint

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"strings"
	"testing"
)

// whiteSession returns a session with a w×h white buffer loaded.
func whiteSession(t *testing.T, w, h int, opts ...SessionOption) *Session {
	t.Helper()
	s := NewSession(opts...)
	colors := slices.Repeat([]color.NRGBA{White.NRGBA()}, w*h)
	if err := s.LoadBuffer(colors, w, h); err != nil {
		t.Fatalf("LoadBuffer() = %v", err)
	}
	return s
}

func countColor(pix []color.NRGBA, c RGBA) int {
	n := 0
	for _, p := range pix {
		if p == c.NRGBA() {
			n++
		}
	}
	return n
}

func TestSession_StrokeAndUndo(t *testing.T) {
	s := whiteSession(t, 32, 32)
	s.SetBrushColor(Black)
	s.SetBrushRadius(2)
	white := s.ExportBuffer()

	if err := s.OnPointerDown(Pt(4, 4)); err != nil {
		t.Fatalf("OnPointerDown() = %v", err)
	}
	if s.State() != Stroking {
		t.Fatalf("State() = %s, want Stroking", s.State())
	}
	s.OnPointerMove(Pt(20, 4))
	s.OnPointerMove(Pt(20, 20))
	if err := s.OnPointerUp(Pt(20, 20)); err != nil {
		t.Fatalf("OnPointerUp() = %v", err)
	}
	if s.State() != Idle {
		t.Fatalf("State() = %s, want Idle", s.State())
	}

	if s.History().Len() != 1 {
		t.Errorf("History().Len() = %d, want one command per stroke", s.History().Len())
	}
	painted := s.ExportBuffer()
	if countColor(painted, Black) == 0 {
		t.Fatal("stroke painted nothing")
	}
	// The corner of the L stroke: pointer (20, 4) is storage row 27.
	if c, _ := s.Buffer().At(20, 27); c != Black.NRGBA() {
		t.Errorf("stroke corner = %v, want black", c)
	}

	ok, err := s.Undo()
	if !ok || err != nil {
		t.Fatalf("Undo() = %v, %v", ok, err)
	}
	if !slices.Equal(s.ExportBuffer(), white) {
		t.Error("Undo did not restore the white buffer")
	}
	if ok, err := s.Undo(); ok || err != nil {
		t.Errorf("Undo() on empty history = %v, %v; want false, nil", ok, err)
	}
}

func TestSession_TapLeavesDab(t *testing.T) {
	s := whiteSession(t, 8, 8, WithBrush(brushWith(1, Black)))
	_ = s.OnPointerDown(Pt(3, 3))
	_ = s.OnPointerUp(Pt(3, 3))

	if c, _ := s.Buffer().At(3, 4); c != Black.NRGBA() {
		t.Errorf("tap center = %v, want black", c)
	}
	if s.History().Len() != 1 {
		t.Errorf("History().Len() = %d, want 1", s.History().Len())
	}
}

func TestSession_UpPaintsToReleasePoint(t *testing.T) {
	s := whiteSession(t, 16, 4, WithBrush(brushWith(1, Black)))
	_ = s.OnPointerDown(Pt(1, 2))
	_ = s.OnPointerUp(Pt(14, 2))

	row := 4 - 2 - 1
	for x := 1; x <= 14; x++ {
		if c, _ := s.Buffer().At(x, row); c != Black.NRGBA() {
			t.Fatalf("column %d unpainted after pointer-up", x)
		}
	}
}

func TestSession_IdleEventsIgnored(t *testing.T) {
	s := whiteSession(t, 8, 8)
	before := s.ExportBuffer()

	s.OnPointerMove(Pt(4, 4))
	if err := s.OnPointerUp(Pt(4, 4)); err != nil {
		t.Fatalf("OnPointerUp() while idle = %v", err)
	}
	if !slices.Equal(s.ExportBuffer(), before) || s.History().Len() != 0 {
		t.Error("events while idle changed the session")
	}
}

func TestSession_DownWhileStrokingCommits(t *testing.T) {
	s := whiteSession(t, 16, 16, WithBrush(brushWith(1, Black)))
	_ = s.OnPointerDown(Pt(2, 2))
	_ = s.OnPointerDown(Pt(12, 12))
	_ = s.OnPointerUp(Pt(12, 12))

	if s.History().Len() != 2 {
		t.Fatalf("History().Len() = %d, want 2", s.History().Len())
	}
	_, _ = s.Undo()
	if c, _ := s.Buffer().At(12, 3); c != White.NRGBA() {
		t.Error("second stroke should be undone")
	}
	if c, _ := s.Buffer().At(2, 13); c != Black.NRGBA() {
		t.Error("first stroke should survive the undo")
	}
}

func TestSession_StrokeInProgress(t *testing.T) {
	s := whiteSession(t, 8, 8)
	_ = s.OnPointerDown(Pt(1, 1))

	if _, err := s.Undo(); !errors.Is(err, ErrStrokeInProgress) {
		t.Errorf("Undo() error = %v, want ErrStrokeInProgress", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrStrokeInProgress) {
		t.Errorf("Reset() error = %v, want ErrStrokeInProgress", err)
	}
	if err := s.LoadBuffer(make([]color.NRGBA, 4), 2, 2); !errors.Is(err, ErrStrokeInProgress) {
		t.Errorf("LoadBuffer() error = %v, want ErrStrokeInProgress", err)
	}
}

func TestSession_NoBuffer(t *testing.T) {
	s := NewSession()
	if err := s.OnPointerDown(Pt(1, 1)); err != nil {
		t.Errorf("OnPointerDown() without buffer = %v, want nil", err)
	}
	s.OnPointerMove(Pt(2, 2))
	if s.State() != Idle {
		t.Errorf("State() = %s without buffer, want Idle", s.State())
	}
	if _, err := s.Undo(); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("Undo() error = %v, want ErrNoBuffer", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("Reset() error = %v, want ErrNoBuffer", err)
	}
	if s.ExportBuffer() != nil || s.Image() != nil || s.Damage() != nil {
		t.Error("accessors should return nil without a buffer")
	}
}

func TestSession_LoadBufferSizeMismatch(t *testing.T) {
	s := NewSession()
	if err := s.LoadBuffer(make([]color.NRGBA, 5), 2, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("LoadBuffer() error = %v, want ErrSizeMismatch", err)
	}
	if s.Buffer() != nil {
		t.Error("failed LoadBuffer should not install a buffer")
	}
}

func TestSession_LoadBufferClearsHistory(t *testing.T) {
	s := whiteSession(t, 8, 8)
	_ = s.OnPointerDown(Pt(4, 4))
	_ = s.OnPointerUp(Pt(4, 4))

	colors := slices.Repeat([]color.NRGBA{Blue.NRGBA()}, 4)
	if err := s.LoadBuffer(colors, 2, 2); err != nil {
		t.Fatalf("LoadBuffer() = %v", err)
	}
	if s.History().Len() != 0 {
		t.Errorf("History().Len() = %d after load, want 0", s.History().Len())
	}

	// The session holds its own copy.
	colors[0] = Red.NRGBA()
	if c, _ := s.Buffer().At(0, 0); c != Blue.NRGBA() {
		t.Error("LoadBuffer must copy the supplied colors")
	}
}

func TestSession_ResetAndUndo(t *testing.T) {
	s := whiteSession(t, 16, 16, WithBrush(brushWith(3, Red)))
	original := s.ExportBuffer()

	_ = s.OnPointerDown(Pt(5, 5))
	_ = s.OnPointerUp(Pt(10, 10))
	painted := s.ExportBuffer()

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() = %v", err)
	}
	if !slices.Equal(s.ExportBuffer(), original) {
		t.Error("Reset did not restore the loaded image")
	}

	_, _ = s.Undo()
	if !slices.Equal(s.ExportBuffer(), painted) {
		t.Error("undoing Reset should restore the painted state")
	}
	_, _ = s.Undo()
	if !slices.Equal(s.ExportBuffer(), original) {
		t.Error("undoing the stroke should restore the original")
	}
}

func TestSession_Damage(t *testing.T) {
	s := whiteSession(t, 128, 128, WithDamageTileSize(32))

	full := s.Damage()
	if len(full) != 4 || full[0] != image.Rect(0, 0, 128, 32) {
		t.Fatalf("Damage() after load = %v, want four full-width rows", full)
	}
	if got := s.Damage(); len(got) != 0 {
		t.Fatalf("Damage() after flush = %v, want empty", got)
	}

	s.SetBrushRadius(2)
	_ = s.OnPointerDown(Pt(10, 10))
	_ = s.OnPointerUp(Pt(12, 10))

	// Pointer row 10 is storage row 117, inside the bottom tile row.
	got := s.Damage()
	if len(got) != 1 || got[0] != image.Rect(0, 96, 32, 128) {
		t.Errorf("Damage() after stroke = %v, want [(0,96)-(32,128)]", got)
	}
}

func TestSession_BrushSettings(t *testing.T) {
	s := NewSession()
	if s.SetBrushRadius(0) || s.Brush().Radius() != DefaultRadius {
		t.Error("SetBrushRadius(0) should be ignored")
	}
	if !s.SetBrushRadius(7) || s.Brush().Radius() != 7 {
		t.Error("SetBrushRadius(7) should apply")
	}
	s.SetBrushColor(Blue)
	if s.SetBrushColorHex("zzz") || s.Brush().Color() != DefaultBrushColor {
		t.Error("invalid hex should fall back to the default color")
	}
	s.SetBlendStrength(4)
	if s.BlendStrength() != 1 {
		t.Errorf("BlendStrength() = %v, want clamped 1", s.BlendStrength())
	}
}

func TestSession_LogsStrokeLifecycle(t *testing.T) {
	logs := captureLogs(t)
	s := whiteSession(t, 8, 8)
	_ = s.OnPointerDown(Pt(2, 2))
	_ = s.OnPointerUp(Pt(2, 2))
	_, _ = s.Undo()

	out := logs.String()
	for _, want := range []string{"stroke begin", "command executed", "command undone", "kind=PaintStroke"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestState_String(t *testing.T) {
	if Idle.String() != "Idle" || Stroking.String() != "Stroking" || State(7).String() != "State(7)" {
		t.Error("unexpected State names")
	}
}

// TestSession_PartialStrengthBlendsStartOnce pins how often the start pixel
// of a stroke is blended: once by the pointer-down dab and once by the
// neighbouring sample at distance 1, never again by the segment's own start.
func TestSession_PartialStrengthBlendsStartOnce(t *testing.T) {
	tests := []struct {
		name string
		move Point
		want uint8
	}{
		{"move in place", Pt(2, 2), 128},
		{"drag away", Pt(6, 2), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := whiteSession(t, 8, 8, WithBlendStrength(0.5))
			s.SetBrushColor(Black)
			s.SetBrushRadius(1)

			_ = s.OnPointerDown(Pt(2, 2))
			s.OnPointerMove(tt.move)
			_ = s.OnPointerUp(tt.move)

			// Pointer row 2 is storage row 8-2-1 = 5.
			c, err := s.Buffer().At(2, 5)
			if err != nil {
				t.Fatal(err)
			}
			if c.R != tt.want {
				t.Errorf("start pixel R = %d, want %d", c.R, tt.want)
			}
		})
	}
}
