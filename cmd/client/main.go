package main

import (
	"context"

	"github.com/dmitrijs2005/labkeeper/internal/client/cli"
	"github.com/dmitrijs2005/labkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	cli.Run(ctx, cfg)

}
