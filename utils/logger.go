package utils

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

func InitLogger() {
	cfg := zap.NewProductionConfig()
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	Logger = l.Sugar()
}
