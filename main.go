package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/statement-server/api"
	"github.com/carson-networks/statement-server/internal/config"
	"github.com/carson-networks/statement-server/internal/export"
	"github.com/carson-networks/statement-server/internal/logging"
	"github.com/carson-networks/statement-server/internal/operator"
	"github.com/carson-networks/statement-server/internal/render"
	"github.com/carson-networks/statement-server/internal/service"
	"github.com/carson-networks/statement-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("statement-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	artifactStore, err := storage.NewArtifactStore(envConfig.ArtifactDir)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewArtifactStore")
		return
	}

	engine := export.NewChromeEngine(envConfig.ChromeBin)
	delegator := operator.NewOperatorDelegator(engine, envConfig.ExportWorkers)
	delegator.Start()
	defer delegator.Stop()

	renderer := render.NewRenderer(envConfig.TemplatesDir)
	svc := service.NewService(renderer, delegator, artifactStore, envConfig)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
