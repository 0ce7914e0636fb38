package main

import (
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/amdl-client/internal/api"
	"github.com/ytget/amdl-client/internal/auth"
	"github.com/ytget/amdl-client/internal/config"
	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/logs"
	"github.com/ytget/amdl-client/internal/queue"
	"github.com/ytget/amdl-client/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.amdl-client"
	AppName = "AMDL Client"
)

func main() {
	serverFlag := flag.String("server", "", "backend base URL, overrides saved settings")
	configFlag := flag.String("config", "", "path to a YAML config file (env "+config.EnvConfigPath+")")
	flag.Parse()

	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	cfg, err := config.LoadFile(config.ResolvePath(*configFlag))
	if err != nil {
		log.Printf("Config file ignored: %v", err)
	}
	settings.Apply(cfg)
	if *serverFlag != "" {
		settings.SetServerURL(*serverFlag)
	}

	client, err := api.NewClient(settings.GetServerURL(), api.WithLogger(log.Default()))
	if err != nil {
		log.Fatalf("Invalid server URL %q: %v", settings.GetServerURL(), err)
	}
	log.Printf("Using backend %s", client.BaseURL())

	downloadSvc := download.NewService(client, string(settings.GetCodec()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	root := ui.NewRootUI(myWindow, myApp, ui.Services{
		Backend:    client,
		Downloader: downloadSvc,
		Queue:      queue.NewPoller(client, nil, 0),
		Auth:       auth.NewPoller(client, 0),
		Logs:       logs.NewBuffer(0),
	})
	root.Start()

	myWindow.ShowAndRun()
}
