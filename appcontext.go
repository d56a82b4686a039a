package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"
)

// ----------------------------------------------------------------------

const DEFAULT_MOUSE_NAME = "Logitech USB Receiver Mouse"

const VIRTUAL_KEYBOARD_NAME = "MouseGestureVirtualKeyboard"

// ----------------------------------------------------------------------

type AppContext struct {
	Args []string

	MouseName string
	MousePath string

	Mouse    *evdev.InputDevice
	Keyboard *evdev.InputDevice

	Classifier *GestureClassifier

	MouseEvents chan *evdev.InputEvent
	Errors      chan error

	Cancel  context.CancelFunc
	Context context.Context

	wg sync.WaitGroup
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) Dispose() {

	fmt.Println("Disposing")

	if appCtx.Cancel != nil {
		appCtx.Cancel()
	}

	if appCtx.Mouse != nil {
		fmt.Printf("Closing %s\n", appCtx.Mouse.Path())
		appCtx.Mouse.Close()
	}

	if appCtx.Keyboard != nil {
		fmt.Println("Closing virtual keyboard device")
		appCtx.Keyboard.Close()
	}

	appCtx.wg.Wait()
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) selectPath() error {

	for _, arg := range appCtx.Args {
		if arg == "-i" || arg == "--interactive" {
			var err error
			appCtx.MousePath, err = selectDevice("Select a MOUSE device:")
			return err
		}
	}

	if path := os.Getenv("MX3_GESTURES_MOUSE"); path != "" {
		appCtx.MousePath = path
		return nil
	}

	if name := os.Getenv("MX3_GESTURES_MOUSE_NAME"); name != "" {
		appCtx.MouseName = name
	}

	return appCtx.findMouse()
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) findMouse() error {

	fmt.Printf("Looking for mouse device: %s\n", appCtx.MouseName)

	paths, err := evdev.ListDevicePaths()

	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Printf("Checking device: %s (%s)\n", path.Path, path.Name)

		if strings.Contains(path.Name, appCtx.MouseName) {
			fmt.Printf("Found '%s' mouse device: %s\n", appCtx.MouseName, path.Path)
			appCtx.MousePath = path.Path
			return nil
		}
	}

	return fmt.Errorf("'%s' not found, please verify the exact device name", appCtx.MouseName)
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) openMouse() error {

	fmt.Printf("Opening %s\n", appCtx.MousePath)

	var err error
	appCtx.Mouse, err = evdev.Open(appCtx.MousePath)

	return err
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) createKeyboard() error {

	fmt.Println("Creating virtual keyboard device")

	keyboard, err := evdev.CreateDevice(
		VIRTUAL_KEYBOARD_NAME,
		evdev.InputID{
			BusType: 0x03, // BUS_USB
			Vendor:  0x1234,
			Product: 0x5678,
			Version: 1,
		},
		map[evdev.EvType][]evdev.EvCode{
			evdev.EV_KEY: chordKeys(),
		},
	)

	if err != nil {
		return fmt.Errorf("cannot create uinput device"+
			" (try 'sudo modprobe uinput' and check the input/uinput group membership): %w", err)
	}

	appCtx.Keyboard = keyboard

	return nil
}

// ----------------------------------------------------------------------

func (appCtx *AppContext) initialize() error {

	appCtx.Args = os.Args
	appCtx.MouseName = DEFAULT_MOUSE_NAME
	appCtx.Classifier = newGestureClassifier()

	err := whileNoError(
		appCtx.selectPath,
		appCtx.openMouse,
		appCtx.createKeyboard,
	)

	if err != nil {
		return err
	}

	appCtx.MouseEvents = make(chan *evdev.InputEvent)
	appCtx.Errors = make(chan error)

	appCtx.Context, appCtx.Cancel = context.WithCancel(context.Background())
	appCtx.wg.Add(1)

	return nil
}

// ----------------------------------------------------------------------
