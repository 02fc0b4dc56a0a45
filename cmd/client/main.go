// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client calls a notekeeper server from the command line.
//
// Usage:
//
//	client [flags] <command> [args]
//
// Commands:
//
//	version
//	token <principal>              issue a token (needs the server's sign key)
//	register-device <alias> <key>
//	aliases
//	devices
//	delete-device <alias>
//	notes
//	add-note <data>
//	update-note <id> <data>
//	delete-note <id>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/notekeeper/internal/adapter"
	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [flags] <command> [args]")

func main() {
	log := logger.NewLogger("notekeeper-client")

	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "Server address")
	fs.StringVar(&cfg.Adapter.Token, "t", cfg.Adapter.Token, "Bearer token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", cfg.App.TokenSignKey, "Token signing key (token command)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", cfg.App.TokenIssuer, "Token issuer (token command)")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", cfg.App.TokenDuration, "Token duration (token command)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "warn", "Log level")
	_ = fs.Parse(os.Args[1:])

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err = run(context.Background(), cfg, fs.Args(), os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, args []string, out io.Writer, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]

	if command == "token" {
		return issueToken(ctx, cfg.App, args, out, log)
	}
	if command == "build-info" {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		_, err := fmt.Fprintf(out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return err
	}

	client, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return err
	}
	client.SetToken(cfg.Adapter.Token)

	switch {
	case command == "version" && len(args) == 0:
		version, err := client.GetServerVersion(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err

	case command == "register-device" && len(args) == 2:
		return client.RegisterDevice(ctx, models.Device{
			Alias:     models.DeviceAlias(args[0]),
			PublicKey: models.PublicKey(args[1]),
		})

	case command == "aliases" && len(args) == 0:
		aliases, err := client.GetDeviceAliases(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, aliases)

	case command == "devices" && len(args) == 0:
		devices, err := client.GetDevices(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, devices)

	case command == "delete-device" && len(args) == 1:
		return client.DeleteDevice(ctx, models.DeviceAlias(args[0]))

	case command == "notes" && len(args) == 0:
		notes, err := client.GetNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, notes)

	case command == "add-note" && len(args) == 1:
		note, err := client.AddNote(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, note)

	case command == "update-note" && len(args) == 2:
		id, err := models.ParseNoteID(args[0])
		if err != nil {
			return err
		}
		return client.UpdateNote(ctx, models.EncryptedNote{ID: id, Data: args[1]})

	case command == "delete-note" && len(args) == 1:
		id, err := models.ParseNoteID(args[0])
		if err != nil {
			return err
		}
		return client.DeleteNote(ctx, id)
	}

	return fmt.Errorf("%w: unknown command or wrong arguments: %s", errUsage, command)
}

func issueToken(ctx context.Context, cfg config.App, args []string, out io.Writer, log *logger.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: token <principal>", errUsage)
	}

	token, err := service.NewAuthService(cfg, log).CreateToken(ctx, models.Principal(args[0]))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token.SignedString)
	return err
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
