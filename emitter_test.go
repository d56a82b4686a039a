package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
)

// ----------------------------------------------------------------------

type recordingWriter struct {
	events  []evdev.InputEvent
	failAt  int // 1-based write index that fails, 0 = never
	written int
}

func (writer *recordingWriter) WriteOne(event *evdev.InputEvent) error {
	writer.written++

	if writer.failAt != 0 && writer.written >= writer.failAt {
		return fmt.Errorf("write to /dev/uinput failed")
	}

	writer.events = append(writer.events, *event)
	return nil
}

// ----------------------------------------------------------------------

func expectKey(t *testing.T, event evdev.InputEvent, key evdev.EvCode, value int32) {
	t.Helper()

	if event.Type != evdev.EV_KEY || event.Code != key || event.Value != value {
		t.Errorf("expected key event code=%d value=%d, got type=%d code=%d value=%d",
			key, value, event.Type, event.Code, event.Value)
	}
}

func expectSync(t *testing.T, event evdev.InputEvent) {
	t.Helper()

	if event.Type != evdev.EV_SYN || event.Code != evdev.SYN_REPORT {
		t.Errorf("expected sync event, got type=%d code=%d", event.Type, event.Code)
	}
}

// ----------------------------------------------------------------------

func TestChordPressReleaseSymmetry(t *testing.T) {

	writer := &recordingWriter{}
	keys := []evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE, evdev.KEY_RIGHTBRACE}

	if err := sendChord(writer, keys); err != nil {
		t.Fatalf("sendChord failed: %v", err)
	}

	if len(writer.events) != 8 {
		t.Fatalf("expected 8 events for a 3-key chord, got %d", len(writer.events))
	}

	expectKey(t, writer.events[0], evdev.KEY_LEFTMETA, 1)
	expectKey(t, writer.events[1], evdev.KEY_LEFTBRACE, 1)
	expectKey(t, writer.events[2], evdev.KEY_RIGHTBRACE, 1)
	expectSync(t, writer.events[3])
	expectKey(t, writer.events[4], evdev.KEY_RIGHTBRACE, 0)
	expectKey(t, writer.events[5], evdev.KEY_LEFTBRACE, 0)
	expectKey(t, writer.events[6], evdev.KEY_LEFTMETA, 0)
	expectSync(t, writer.events[7])
}

// ----------------------------------------------------------------------

func TestSingleKeyChord(t *testing.T) {

	writer := &recordingWriter{}

	if err := sendChord(writer, []evdev.EvCode{evdev.KEY_LEFTMETA}); err != nil {
		t.Fatalf("sendChord failed: %v", err)
	}

	if len(writer.events) != 4 {
		t.Fatalf("expected 4 events for a 1-key chord, got %d", len(writer.events))
	}

	expectKey(t, writer.events[0], evdev.KEY_LEFTMETA, 1)
	expectSync(t, writer.events[1])
	expectKey(t, writer.events[2], evdev.KEY_LEFTMETA, 0)
	expectSync(t, writer.events[3])
}

// ----------------------------------------------------------------------

func TestChordHoldsForSettleDelay(t *testing.T) {

	writer := &recordingWriter{}
	start := time.Now()

	if err := sendChord(writer, []evdev.EvCode{evdev.KEY_LEFTMETA}); err != nil {
		t.Fatalf("sendChord failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed < SETTLE_DELAY {
		t.Errorf("chord released after %v, expected at least %v", elapsed, SETTLE_DELAY)
	}
}

// ----------------------------------------------------------------------

func TestChordWriteFailurePropagates(t *testing.T) {

	writer := &recordingWriter{failAt: 1}

	err := sendChord(writer, []evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE})

	if err == nil {
		t.Fatal("expected error from failing writer")
	}

	if writer.written != 1 {
		t.Errorf("expected sequence to stop at the failed write, got %d writes", writer.written)
	}
}

// ----------------------------------------------------------------------

func TestChordTable(t *testing.T) {

	if keys := gestureChords[GestureTap]; len(keys) != 1 || keys[0] != evdev.KEY_LEFTMETA {
		t.Errorf("unexpected tap chord: %v", keys)
	}

	right := gestureChords[GestureSwipeRight]
	if len(right) != 2 || right[0] != evdev.KEY_LEFTMETA || right[1] != evdev.KEY_LEFTBRACE {
		t.Errorf("unexpected swipe-right chord: %v", right)
	}

	left := gestureChords[GestureSwipeLeft]
	if len(left) != 2 || left[0] != evdev.KEY_LEFTMETA || left[1] != evdev.KEY_RIGHTBRACE {
		t.Errorf("unexpected swipe-left chord: %v", left)
	}

	for _, gesture := range []Gesture{GestureSwipeUp, GestureSwipeDown, GestureLongPress, GestureIgnored} {
		if _, bound := gestureChords[gesture]; bound {
			t.Errorf("gesture %s must not be bound to a chord", gesture)
		}
	}
}

// ----------------------------------------------------------------------

func TestChordKeysCoverTable(t *testing.T) {

	keys := chordKeys()

	expected := map[evdev.EvCode]bool{
		evdev.KEY_LEFTMETA:   true,
		evdev.KEY_LEFTBRACE:  true,
		evdev.KEY_RIGHTBRACE: true,
	}

	if len(keys) != len(expected) {
		t.Fatalf("expected %d distinct keys, got %v", len(expected), keys)
	}

	for _, key := range keys {
		if !expected[key] {
			t.Errorf("unexpected key %d advertised", key)
		}
	}
}
