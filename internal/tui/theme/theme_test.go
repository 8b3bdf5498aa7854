package theme

import "testing"

func TestByNameFallsBackToFlexoki(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("no-such-theme").Name; got != FlexokiDark.Name {
		t.Errorf("unknown theme = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q after SetActive(terminal)", Active.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "flexoki-dark" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRemaining(t *testing.T) {
	if FlexokiDark.Remaining(true) != FlexokiDark.Red {
		t.Error("overspent budget should be red")
	}
	if FlexokiDark.Remaining(false) != FlexokiDark.Green {
		t.Error("healthy budget should be green")
	}
}
