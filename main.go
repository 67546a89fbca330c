package main

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/garage/internal/config"
	"github.com/ytget/garage/internal/ui"
)

// Version and edition are set during build via
// -ldflags "-X main.version=X.Y.Z -X main.edition=business"
var (
	version = "dev"
	edition = config.EditionConsumer
)

const (
	AppID   = "com.ytget.garage"
	AppName = "Garage"

	WindowWidth  = 820
	WindowHeight = 560
)

func main() {
	build := config.NewBuild(runtime.GOOS, edition)
	fmt.Printf("%s v%s (%s, %s) starting...\n", AppName, version, build.EditionName(), build.Platform)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	ui.NewRootUI(myWindow, build, settings)

	myWindow.ShowAndRun()
}
