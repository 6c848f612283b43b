package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contractreview/internal/artifact"
	"contractreview/internal/config"
	"contractreview/internal/gateway"
	"contractreview/internal/history/historystore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := historystore.NewFromEnv(cfg.HistoryPath)

	var artifacts artifact.Store
	if cfg.Artifact.Enabled {
		s3, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			log.Printf("artifact store unavailable, using memory: %v", err)
			artifacts = artifact.NewMemoryStore()
		} else {
			artifacts = s3
		}
	} else {
		artifacts = artifact.NewMemoryStore()
	}

	app := gateway.New(cfg, store, artifacts, log.Default())
	app.Load(context.Background())

	srv := gateway.NewServer(cfg.Port, app.Handler())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
