package main

import (
	"github.com/handmadefactory/backend/config"
	"github.com/handmadefactory/backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
