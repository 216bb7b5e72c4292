package handler

import (
	"net/http"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/di"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
