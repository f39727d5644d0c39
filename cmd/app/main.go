package main

import (
	"paradasia/config"
	"paradasia/di"
	"paradasia/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
