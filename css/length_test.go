package css_test

import (
	"testing"

	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestLengthMatch(t *testing.T) {
	ten := css.NewLength(10, css.PT)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected 10pt to be an absolute length, isn't: %s", ten)
	}
	if du != 10*dimen.PT {
		t.Errorf("expected 10pt to convert to %d DU, is %d", 10*dimen.PT, du)
	}

	pcnt := css.NewLength(80, css.Percent)
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Just(nil):
		t.Errorf("expected percentage not to match absolute lengths")
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected 80%% to be a percentage value, isn't: %s", pcnt)
	}
	if p != percent.FromInt(80) {
		t.Errorf("expected 80%%, have %s", p)
	}

	var v float64
	var unit css.Unit
	switch m := css.NewLength(1.5, css.EM).Match(); m {
	case m.FontRelative(&v, &unit):
		if v != 1.5 || unit != css.EM {
			t.Errorf("expected 1.5em, have %g%s", v, unit)
		}
	default:
		t.Errorf("expected em to be font relative")
	}

	var msec float64
	switch m := css.NewLength(2, css.S).Match(); m {
	case m.Duration(&msec):
		if msec != 2000 {
			t.Errorf("expected 2s = 2000ms, have %g", msec)
		}
	default:
		t.Errorf("expected 2s to be a duration")
	}
}

func TestLengthPixelsAsDesignUnits(t *testing.T) {
	l := css.NewLength(96, css.PX)
	du, ok := l.DU()
	if !ok {
		t.Fatalf("expected px to be absolute")
	}
	if du != 72*dimen.PT {
		t.Errorf("expected 96px = 72pt, have %s", du)
	}
	if _, ok := css.NewLength(1, css.EX).DU(); ok {
		t.Errorf("ex must not convert to design units")
	}
}
