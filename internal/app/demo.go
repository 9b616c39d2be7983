package app

import (
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
)

// Demo state backing the built-in menu. On the radio board these live in
// driver registers; here they only demonstrate live value rendering.
var (
	demoChannel = 11
	demoFreqMHz = 2405.0
	demoTxPower = "+7 dBm"
	demoRadioOn = "on"
	demoRSSI    = -68.5
	demoTempC   = 23.125
	demoVolts   = 3.3
	demoUptime  = "0d 00:14"
	demoLCDGain = 2
)

// Actions exposes the named actions a menu definition file may bind to.
func Actions() map[string]menu.Action {
	return map[string]menu.Action{
		"cycle-channel": cycleChannel,
		"toggle-radio":  toggleRadio,
		"select-power":  selectPower,
		"bump-gain":     bumpGain,
		"noop":          func(any) bool { return true },
	}
}

// cycleChannel steps through the IEEE 802.15.4 channel plan (11..26) and
// keeps the derived centre frequency in step.
func cycleChannel(any) bool {
	demoChannel++
	if demoChannel > 26 {
		demoChannel = 11
	}
	demoFreqMHz = 2405 + 5*float64(demoChannel-11)
	return true
}

func toggleRadio(any) bool {
	if demoRadioOn == "on" {
		demoRadioOn = "off"
	} else {
		demoRadioOn = "on"
	}
	return true
}

// selectPower stores the entered item's argument as the new TX power
// label. The option menu records the cursor position itself.
func selectPower(args any) bool {
	if s, ok := args.(string); ok {
		demoTxPower = s
	}
	return true
}

func bumpGain(any) bool {
	demoLCDGain++
	if demoLCDGain > 4 {
		demoLCDGain = 0
	}
	return true
}

// DemoMenu builds the built-in tree. It deliberately exercises every row
// feature: bound values of all kinds, split alignment, swapped fields,
// option selection, frozen cursors, reserved rows, disabled entries, and
// extend rows.
func DemoMenu() *menu.Menu {
	radio := &menu.Menu{
		SelectedItem: menu.NoSelection,
		Items: []menu.Item{
			{Index: "1", Description: "Channel", Value: menu.IntValue(&demoChannel), Action: cycleChannel, Align: menu.AlignSplit},
			{Index: "2", Description: "Freq MHz", Value: menu.AutoFloatValue(&demoFreqMHz), Align: menu.AlignSplit},
			{Index: "3", Description: "Radio", Value: menu.TextValue(&demoRadioOn), Action: toggleRadio, Align: menu.AlignSplit},
			{Index: "4", Description: "RSSI dBm", Value: menu.AutoFloatValue(&demoRSSI), Align: menu.AlignSplit, Disabled: true},
		},
	}

	power := &menu.Menu{
		SelectedItem: 2,
		Items: []menu.Item{
			{Description: "0 dBm", Action: selectPower, Args: "0 dBm"},
			{Description: "+4 dBm", Action: selectPower, Args: "+4 dBm"},
			{Description: "+7 dBm", Action: selectPower, Args: "+7 dBm"},
			{Description: "+9 dBm boost", Action: selectPower, Args: "+9 dBm"},
		},
	}

	// The bottom row stays reserved for an externally drawn status strip.
	status := &menu.Menu{
		SelectedItem: menu.FrozenSelection,
		Reserved:     1 << 7,
		Items: []menu.Item{
			{Description: "Temp C", Value: menu.FloatValue(&demoTempC, 3), Align: menu.AlignSplit, Swap: true},
			{Description: "Supply V", Value: menu.FloatValue(&demoVolts, 2), Align: menu.AlignSplit, Swap: true},
			{Description: "Uptime", Value: menu.TextValue(&demoUptime), Align: menu.AlignSplit, Swap: true},
		},
	}

	about := &menu.Menu{
		SelectedItem: menu.NoSelection,
		Items: []menu.Item{
			{Description: "CC2538 + CC2592", Align: menu.AlignCenter},
			{Description: "PA/LNA range ext.", Align: menu.AlignCenter, Extend: true, Disabled: true},
			{Description: "fw 1.4.2", Align: menu.AlignCenter},
		},
	}

	root := &menu.Menu{
		SelectedItem: menu.NoSelection,
		TotalText:    "6",
		Items: []menu.Item{
			{Index: "1", Description: "Radio", Submenu: radio},
			{Index: "2", Description: "TX Power", Value: menu.TextValue(&demoTxPower), Submenu: power},
			{Index: "3", Description: "Status", Submenu: status},
			{Index: "4", Description: "LCD Gain", Value: menu.IntValue(&demoLCDGain), Action: bumpGain},
			{Index: "5", Description: "About", Submenu: about},
			{Index: "6", Description: "Service", Disabled: true},
		},
	}
	return root
}
