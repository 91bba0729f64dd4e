package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port                 string
	TemplatesDir         string
	ArtifactDir          string
	ChromeBin            string
	CurrencySymbol       string
	RenderTimeoutSeconds int
	ExportWorkers        int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:                 "5050",
		TemplatesDir:         "templates",
		ArtifactDir:          "artifacts",
		ChromeBin:            "",
		CurrencySymbol:       "₦",
		RenderTimeoutSeconds: 30,
		ExportWorkers:        4,
	}

	envPort := os.Getenv("PORT")
	envTemplatesDir := os.Getenv("TEMPLATES_DIR")
	envArtifactDir := os.Getenv("ARTIFACT_DIR")
	envChromeBin := os.Getenv("CHROME_BIN")
	envCurrencySymbol := os.Getenv("CURRENCY_SYMBOL")
	envRenderTimeout := os.Getenv("RENDER_TIMEOUT_SECONDS")
	envExportWorkers := os.Getenv("EXPORT_WORKERS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envTemplatesDir) != 0 {
		env.TemplatesDir = envTemplatesDir
	}

	if len(envArtifactDir) != 0 {
		env.ArtifactDir = envArtifactDir
	}

	if len(envChromeBin) != 0 {
		env.ChromeBin = envChromeBin
	}

	if len(envCurrencySymbol) != 0 {
		env.CurrencySymbol = envCurrencySymbol
	}

	if len(envRenderTimeout) != 0 {
		parsed, err := strconv.Atoi(envRenderTimeout)
		if err != nil {
			return nil, err
		}
		env.RenderTimeoutSeconds = parsed
	}

	if len(envExportWorkers) != 0 {
		parsed, err := strconv.Atoi(envExportWorkers)
		if err != nil {
			return nil, err
		}
		env.ExportWorkers = parsed
	}

	return &env, nil
}
