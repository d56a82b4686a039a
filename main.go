package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ----------------------------------------------------------------------

func main() {

	appCtx := AppContext{}
	defer appCtx.Dispose()

	err := appCtx.initialize()

	if err != nil {
		fmt.Println(err)
		return
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)

	go startListener(&appCtx, appCtx.Mouse, appCtx.MouseEvents)

	fmt.Printf("Monitoring mouse events... Press Ctrl+C to stop.\n\n")

	for {
		select {
		case sig := <-signals:
			fmt.Printf("\nSignal %v received. Initiating graceful shutdown...\n", sig)
			return

		case event := <-appCtx.MouseEvents:
			err := processMouseEvent(event, appCtx.Classifier, appCtx.Keyboard)

			if err != nil {
				fmt.Println("error:", err)
				appCtx.Cancel()
				return
			}

		case err := <-appCtx.Errors:
			fmt.Println("error:", err)
			appCtx.Cancel()
			return

		case <-appCtx.Context.Done():
			return
		}
	}
}
