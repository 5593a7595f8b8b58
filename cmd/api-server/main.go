package main

import (
	"fmt"
	"os"

	"Persona/config"
	"Persona/dao"
	"Persona/pkg/database"
	"Persona/pkg/log"
	"Persona/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "seed",
				Usage: "provision demo profile rows",
				Action: func(ctx *cli.Context) error {
					users := dao.NewUsers(database.NewDB(cfg))
					seeded, err := users.SeedUsers(ctx.Context)
					if err != nil {
						return err
					}
					for _, u := range seeded {
						log.L.Info("seeded user",
							zap.Int64("id", u.ID),
							zap.String("email", u.Email),
						)
					}
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
