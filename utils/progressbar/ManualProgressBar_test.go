package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := NewManualProgressBarTo(&out, 10, 4)

	p.Increment()
	p.Increment()
	p.Display()

	if got := p.Progress(); got != 0.5 {
		t.Errorf("progress: have(%v) want(0.5)", got)
	}
	if !strings.Contains(out.String(), "50.00%") {
		t.Errorf("display: expected 50.00%% in %q", out.String())
	}

	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if got := p.Progress(); got != 1.0 {
		t.Errorf("progress should saturate: have(%v) want(1)", got)
	}
}
