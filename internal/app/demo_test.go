package app

import (
	"testing"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
)

func TestDemoMenuStructure(t *testing.T) {
	root := DemoMenu()
	if len(root.Items) != 6 {
		t.Fatalf("expected 6 root items, got %d", len(root.Items))
	}
	if root.TotalText != "6" {
		t.Fatalf("expected the navigation counter total, got %q", root.TotalText)
	}
	if !root.Items[5].Disabled {
		t.Fatalf("expected the service item disabled")
	}

	power := root.Items[1].Submenu
	if power == nil || power.SelectedItem != 2 {
		t.Fatalf("expected the power menu pre-selected on +7 dBm")
	}

	status := root.Items[2].Submenu
	if status == nil || status.SelectedItem != menu.FrozenSelection {
		t.Fatalf("expected the status menu frozen")
	}
	if !status.Reserved.Reserved(7) {
		t.Fatalf("expected the status strip row reserved")
	}

	about := root.Items[4].Submenu
	if about == nil || !about.Items[1].Extend {
		t.Fatalf("expected the about menu to carry an extend row")
	}
}

func TestAboutCursorSkipsExtendRow(t *testing.T) {
	about := DemoMenu().Items[4].Submenu

	about.PositionTop()
	if about.CurrentItem != 0 {
		t.Fatalf("expected the cursor at the top, got %d", about.CurrentItem)
	}
	if !about.Down() {
		t.Fatalf("expected Down to move past the continuation row")
	}
	if about.Items[about.CurrentItem].Extend {
		t.Fatalf("cursor landed on extend row %d", about.CurrentItem)
	}
	if about.CurrentItem != 2 {
		t.Fatalf("expected the cursor on the firmware row, got %d", about.CurrentItem)
	}
	if !about.Up() {
		t.Fatalf("expected Up to move back past the continuation row")
	}
	if about.CurrentItem != 0 {
		t.Fatalf("expected the cursor back at the top, got %d", about.CurrentItem)
	}
}

func TestCycleChannelWraps(t *testing.T) {
	demoChannel = 26
	if !cycleChannel(nil) {
		t.Fatalf("expected cycleChannel to report handled")
	}
	if demoChannel != 11 {
		t.Fatalf("expected the channel to wrap to 11, got %d", demoChannel)
	}
	if demoFreqMHz != 2405 {
		t.Fatalf("expected the frequency to follow the channel, got %v", demoFreqMHz)
	}

	cycleChannel(nil)
	if demoChannel != 12 || demoFreqMHz != 2410 {
		t.Fatalf("expected channel 12 at 2410 MHz, got %d at %v", demoChannel, demoFreqMHz)
	}
}

func TestSelectPowerStoresLabel(t *testing.T) {
	demoTxPower = "+7 dBm"
	if !selectPower("+4 dBm") {
		t.Fatalf("expected selectPower to report handled")
	}
	if demoTxPower != "+4 dBm" {
		t.Fatalf("expected the label stored, got %q", demoTxPower)
	}

	selectPower(42) // non-string args are ignored
	if demoTxPower != "+4 dBm" {
		t.Fatalf("expected the label untouched, got %q", demoTxPower)
	}
}

func TestToggleRadio(t *testing.T) {
	demoRadioOn = "on"
	toggleRadio(nil)
	if demoRadioOn != "off" {
		t.Fatalf("expected the radio toggled off, got %q", demoRadioOn)
	}
	toggleRadio(nil)
	if demoRadioOn != "on" {
		t.Fatalf("expected the radio toggled back on, got %q", demoRadioOn)
	}
}

func TestBumpGainWraps(t *testing.T) {
	demoLCDGain = 4
	bumpGain(nil)
	if demoLCDGain != 0 {
		t.Fatalf("expected the gain to wrap to 0, got %d", demoLCDGain)
	}
}

func TestActionsExposesBindings(t *testing.T) {
	actions := Actions()
	for _, name := range []string{"cycle-channel", "toggle-radio", "select-power", "bump-gain", "noop"} {
		if actions[name] == nil {
			t.Fatalf("expected action %q bound", name)
		}
	}
}

func TestPowerSelectionOnEnter(t *testing.T) {
	root := DemoMenu()
	power := root.Items[1].Submenu

	root.CurrentItem = 1
	cur := root.Enter()
	if cur != power {
		t.Fatalf("expected Enter to descend into the power menu")
	}

	cur.CurrentItem = 1
	cur.Enter()
	if power.SelectedItem != 1 {
		t.Fatalf("expected the selection recorded, got %d", power.SelectedItem)
	}
	if demoTxPower != "+4 dBm" {
		t.Fatalf("expected the action applied, got %q", demoTxPower)
	}
}
