package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/danilo/sellora-commerce/cmd/app/commands"
	"github.com/danilo/sellora-commerce/internal/app"
	"github.com/danilo/sellora-commerce/internal/config"
	userDomain "github.com/danilo/sellora-commerce/internal/user/domain"
	userUsecase "github.com/danilo/sellora-commerce/internal/user/usecase"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a new user account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "full-name",
					Required: true,
					Usage:    "User's full name",
				},
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Unique username",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Unique email address",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Plain text password (will be hashed)",
				},
				&cli.StringFlag{
					Name:     "phone",
					Required: true,
					Usage:    "Unique phone number",
				},
				&cli.StringFlag{
					Name:  "user-type",
					Value: "CUSTOMER",
					Usage: "User type: CUSTOMER or SELLER",
				},
				&cli.StringFlag{
					Name:     "document",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Identification document (11 digits, punctuation allowed)",
				},
				&cli.StringFlag{
					Name:  "street",
					Usage: "Address street",
				},
				&cli.StringFlag{
					Name:  "number",
					Usage: "Address number",
				},
				&cli.StringFlag{
					Name:  "city",
					Usage: "Address city",
				},
				&cli.StringFlag{
					Name:  "state",
					Usage: "Address state",
				},
				&cli.StringFlag{
					Name:  "country",
					Usage: "Address country",
				},
				&cli.StringFlag{
					Name:  "zip-code",
					Usage: "Address zip code",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				input := userUsecase.CreateUserInput{
					FullName: cmd.String("full-name"),
					Username: cmd.String("username"),
					Email:    cmd.String("email"),
					Password: cmd.String("password"),
					Phone:    cmd.String("phone"),
					UserType: cmd.String("user-type"),
					Document: cmd.String("document"),
					Address: userDomain.Address{
						Street:  cmd.String("street"),
						Number:  cmd.String("number"),
						City:    cmd.String("city"),
						State:   cmd.String("state"),
						Country: cmd.String("country"),
						ZipCode: cmd.String("zip-code"),
					},
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					input,
					cmd.String("format"),
				)
			},
		},
	}
}
