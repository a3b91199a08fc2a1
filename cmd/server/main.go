package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/config"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/handlers"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/logger"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/model"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogDir)

	log.Info("Loading model from: %s", cfg.ModelPath)

	onnxModel, err := model.LoadOnnxModel(cfg.ModelPath, cfg.ImageSize, len(cfg.ClassNames))
	if err != nil {
		log.Error("Failed to load model: %v", err)
		os.Exit(1)
	}
	defer onnxModel.Close()

	engine := model.NewEngine(onnxModel)
	handler := handlers.NewHandler(engine, cfg.ClassNames, cfg.MaxUploadMB, log)
	router := handlers.NewRouter(handler, log)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Info("Model input: %dx%d, classes: %v", cfg.ImageSize, cfg.ImageSize, cfg.ClassNames)
	log.Info("Endpoints:")
	log.Info("  GET  /ping    - Liveness check")
	log.Info("  POST /predict - Predict from image upload (field 'file')")
	log.Info("Server starting on %s", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
