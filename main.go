package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/journal"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	envFile := flag.String("env", ".env", "dotenv file to load")
	mode := flag.String("mode", "", "console, tcp or http; overrides UNO_MODE")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = consts.Mode(*mode)
		if err := cfg.Validate(); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}

	sink, closeSink, err := openJournal(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer closeSink()

	tables := network.Tables{
		PlayerCount: cfg.PlayerCount,
		HumanName:   cfg.HumanName,
		PlayDelay:   cfg.PlayDelay,
		DrawDelay:   cfg.DrawDelay,
		Sink:        sink,
	}
	switch cfg.Mode {
	case consts.ModeTCP:
		service.StartJanitor(consts.TableIdleTimeout/6, nil)
		log.Error(network.NewTcpServer(cfg.TCPAddr, tables).Serve())
	case consts.ModeHTTP:
		gin.SetMode(cfg.GinMode)
		service.StartJanitor(consts.TableIdleTimeout/6, nil)
		log.Error(network.NewHttpServer(cfg.Addr, tables).Serve())
	default:
		if err := playConsole(cfg, tables); err != nil {
			log.Error(err)
		}
	}
}

func openJournal(cfg config.Config) (journal.Sink, func(), error) {
	file, err := journal.NewFile(cfg.LogDir)
	if err != nil {
		return nil, nil, err
	}
	closers := []func() error{file.Close}
	sinks := journal.Multi{file}
	if cfg.RedisAddr != "" {
		client, err := journal.ConnectRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			_ = file.Close()
			return nil, nil, err
		}
		log.Infof("journal also written to redis at %s\n", cfg.RedisAddr)
		sinks = append(sinks, journal.NewRedis(client, ""))
		closers = append(closers, client.Close)
	}
	return sinks, func() {
		for _, closer := range closers {
			if err := closer(); err != nil {
				log.Error(err)
			}
		}
	}, nil
}

func playConsole(cfg config.Config, tables network.Tables) error {
	console := ui.NewConsole(os.Stdin, color.Stdout, 0)
	name, count, err := console.Setup(cfg.GameName)
	if err != nil {
		return err
	}
	table, err := service.CreateTable(service.TableConfig{
		Name:        name,
		PlayerCount: count,
		HumanName:   tables.HumanName,
		PlayDelay:   tables.PlayDelay,
		DrawDelay:   tables.DrawDelay,
		Sink:        tables.Sink,
		Listeners:   []interface{}{console},
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = service.DeleteTable(table.ID)
	}()
	return console.Play(table)
}
