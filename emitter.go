package main

import (
	"fmt"
	"time"

	"github.com/holoplot/go-evdev"
)

// ----------------------------------------------------------------------

// SETTLE_DELAY keeps the chord observably held between the press batch and
// the release batch; compositors drop the combination without it.
const SETTLE_DELAY = 10 * time.Millisecond

// ----------------------------------------------------------------------

var gestureChords = map[Gesture][]evdev.EvCode{
	GestureTap:        {evdev.KEY_LEFTMETA},
	GestureSwipeRight: {evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE},
	GestureSwipeLeft:  {evdev.KEY_LEFTMETA, evdev.KEY_RIGHTBRACE},
}

// ----------------------------------------------------------------------

// chordKeys returns every key used by the chord table, for advertising on
// the virtual keyboard.
func chordKeys() []evdev.EvCode {

	seen := make(map[evdev.EvCode]bool)
	keys := []evdev.EvCode{}

	for _, chord := range gestureChords {
		for _, key := range chord {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	return keys
}

// ----------------------------------------------------------------------

var SYN_INPUT_EVENT = evdev.InputEvent{
	Type:  evdev.EV_SYN,
	Code:  evdev.SYN_REPORT,
	Value: 0,
}

// ----------------------------------------------------------------------

type eventWriter interface {
	WriteOne(event *evdev.InputEvent) error
}

// ----------------------------------------------------------------------

func writeKey(device eventWriter, key evdev.EvCode, value int32) error {

	event := &evdev.InputEvent{
		Type:  evdev.EV_KEY,
		Code:  key,
		Value: value,
	}

	return device.WriteOne(event)
}

// ----------------------------------------------------------------------

// sendChord presses every key in order, flushes, holds the chord for the
// settle delay, then releases in reverse order and flushes again.
func sendChord(device eventWriter, keys []evdev.EvCode) error {

	for _, key := range keys {
		if err := writeKey(device, key, 1); err != nil {
			return fmt.Errorf("chord press: %w", err)
		}
	}

	if err := device.WriteOne(&SYN_INPUT_EVENT); err != nil {
		return fmt.Errorf("chord sync: %w", err)
	}

	time.Sleep(SETTLE_DELAY)

	for i := len(keys) - 1; i >= 0; i-- {
		if err := writeKey(device, keys[i], 0); err != nil {
			return fmt.Errorf("chord release: %w", err)
		}
	}

	if err := device.WriteOne(&SYN_INPUT_EVENT); err != nil {
		return fmt.Errorf("chord sync: %w", err)
	}

	return nil
}
