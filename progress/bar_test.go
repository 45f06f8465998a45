package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBar_Defaults(t *testing.T) {
	b := NewBar(BarOptions{})
	if b.Total() != 100 {
		t.Errorf("Total() = %d, want 100", b.Total())
	}
	if b.Current() != 0 {
		t.Errorf("Current() = %d, want 0", b.Current())
	}
}

func TestBar_Advance(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   int
	}{
		{"single step", []int{1}, 1},
		{"zero counts as one", []int{0}, 1},
		{"negative counts as one", []int{-5}, 1},
		{"accumulates", []int{3, 4}, 7},
		{"clamped to total", []int{8, 8}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBar(BarOptions{Total: 10})
			for _, d := range tt.deltas {
				b.Advance(d)
			}
			if b.Current() != tt.want {
				t.Errorf("Current() = %d, want %d", b.Current(), tt.want)
			}
		})
	}
}

func TestBar_Set(t *testing.T) {
	b := NewBar(BarOptions{Total: 10})
	b.Set(7)
	if b.Current() != 7 {
		t.Errorf("Current() = %d, want 7", b.Current())
	}
	b.Set(-3)
	if b.Current() != 0 {
		t.Errorf("Current() = %d, want clamp to 0", b.Current())
	}
	b.Set(99)
	if b.Current() != 10 {
		t.Errorf("Current() = %d, want clamp to 10", b.Current())
	}
}

func TestBar_RenderPercent(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBar(BarOptions{Output: out, Total: 4, Width: 4, Interval: idle})
	b.Start("copying")
	b.Set(2)
	if !strings.Contains(out.String(), " 50%") {
		t.Errorf("frame missing percentage: %q", out.String())
	}
	b.Stop("copied", CodeSuccess)
	if !strings.Contains(out.String(), "copied") {
		t.Errorf("stop frame missing message: %q", out.String())
	}
}

func TestBar_HidePercent(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBar(BarOptions{Output: out, Total: 4, Width: 4, Interval: idle, HidePercent: true})
	b.Start("copying")
	b.Set(2)
	if strings.Contains(out.String(), "%") {
		t.Errorf("frame should not contain a percentage: %q", out.String())
	}
	b.Stop("", CodeSuccess)
}

func TestBar_SetBeforeStart(t *testing.T) {
	b := NewBar(BarOptions{Total: 10})
	// Must not panic without a frame writer.
	b.Set(5)
	b.Advance(1)
	b.Stop("never started", CodeSuccess)
}
