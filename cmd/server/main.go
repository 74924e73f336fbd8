package main

import (
	_ "github.com/lib/pq"

	"github.com/shelfgraph/backend/internal/server"
	"github.com/shelfgraph/backend/internal/util"
	"github.com/shelfgraph/backend/pkg/logger"
	"github.com/shelfgraph/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
