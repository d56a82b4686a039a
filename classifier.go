package main

import (
	"time"

	"github.com/holoplot/go-evdev"
)

// ----------------------------------------------------------------------

const MOTION_THRESHOLD = 50

const TAP_TIMEOUT = 200 * time.Millisecond

// ----------------------------------------------------------------------

type Gesture int

const (
	GestureIgnored Gesture = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// ----------------------------------------------------------------------

func (gesture Gesture) String() string {
	switch gesture {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	}

	return "ignored"
}

// ----------------------------------------------------------------------

// GestureClassifier accumulates relative motion between a button press and
// its matching release and classifies the result as one discrete gesture.
// Motion only counts while armed; the threshold flag latches until re-arm.
type GestureClassifier struct {
	armed     bool
	pressTime time.Time

	x, y         int32
	thresholdHit bool
}

// ----------------------------------------------------------------------

func newGestureClassifier() *GestureClassifier {
	return &GestureClassifier{}
}

// ----------------------------------------------------------------------

func (classifier *GestureClassifier) onButtonPress(now time.Time) {
	classifier.armed = true
	classifier.pressTime = now
	classifier.x = 0
	classifier.y = 0
	classifier.thresholdHit = false
}

// ----------------------------------------------------------------------

func (classifier *GestureClassifier) onMotion(code evdev.EvCode, delta int32) {

	if !classifier.armed {
		return
	}

	switch code {
	case evdev.REL_X:
		classifier.x += delta
		if abs(classifier.x) > MOTION_THRESHOLD {
			classifier.thresholdHit = true
		}
	case evdev.REL_Y:
		classifier.y += delta
		if abs(classifier.y) > MOTION_THRESHOLD {
			classifier.thresholdHit = true
		}
	}
}

// ----------------------------------------------------------------------

func (classifier *GestureClassifier) onButtonRelease(now time.Time) Gesture {

	if !classifier.armed {
		return GestureIgnored
	}

	gesture := classifier.classify(now)

	classifier.armed = false
	classifier.x = 0
	classifier.y = 0
	classifier.thresholdHit = false

	return gesture
}

// ----------------------------------------------------------------------

func (classifier *GestureClassifier) classify(now time.Time) Gesture {

	if classifier.thresholdHit {
		// Horizontal wins only on strictly larger magnitude; a tie counts
		// as vertical.
		if abs(classifier.x) > abs(classifier.y) {
			if classifier.x > 0 {
				return GestureSwipeRight
			}
			return GestureSwipeLeft
		}

		if classifier.y > 0 {
			return GestureSwipeDown
		}
		return GestureSwipeUp
	}

	if now.Sub(classifier.pressTime) < TAP_TIMEOUT {
		return GestureTap
	}

	return GestureLongPress
}
