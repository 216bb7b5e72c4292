package main

import (
	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/di"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
