package main

import (
	"log"
	"net/http"
	"os"

	"github.com/cmorman89/the-cruddy-task-list/internal/config"
	"github.com/cmorman89/the-cruddy-task-list/internal/serverapp"
)

const configPath = "cruddy_config.yml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
