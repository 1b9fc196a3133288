package main

import (
	"os"

	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
