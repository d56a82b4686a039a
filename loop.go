package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

// ----------------------------------------------------------------------

func startListener(appCtx *AppContext, device *evdev.InputDevice, events chan *evdev.InputEvent) {

	defer appCtx.wg.Done()

	device.NonBlock()

	for {
		event, err := device.ReadOne()

		if appCtx.Context.Err() != nil {
			return
		}

		if err != nil {
			// A signal interrupting the blocking read is not a failure.
			if errors.Is(err, unix.EINTR) {
				continue
			}

			select {
			case appCtx.Errors <- err:
			case <-appCtx.Context.Done():
			}
			return
		}

		if event != nil {
			select {
			case events <- event:
			case <-appCtx.Context.Done():
				return
			}
		}
	}
}

// ----------------------------------------------------------------------

func processMouseEvent(event *evdev.InputEvent, classifier *GestureClassifier, keyboard eventWriter) error {

	switch event.Type {
	case evdev.EV_KEY:
		if event.Code != evdev.BTN_FORWARD {
			return nil
		}

		switch event.Value {
		case 1:
			classifier.onButtonPress(time.Now())

		case 0:
			gesture := classifier.onButtonRelease(time.Now())

			keys, bound := gestureChords[gesture]

			if !bound {
				return nil
			}

			fmt.Printf("Gesture: %s\n", gesture)

			return sendChord(keyboard, keys)
		}

	case evdev.EV_REL:
		classifier.onMotion(event.Code, event.Value)
	}

	return nil
}
