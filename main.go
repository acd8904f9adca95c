package main

import (
	"evstation/api"
	"evstation/internal"
	"evstation/internal/config"
	"evstation/metrics"
	"evstation/station"
	"evstation/telegram"
	"evstation/transport"
	"log"
	"time"
)

func main() {

	conf, err := config.GetConfig()
	if err != nil {
		log.Println("configuration failed", err)
		return
	}

	log.Println("set time zone to " + conf.TimeZone)
	location, err := time.LoadLocation(conf.TimeZone)
	if err != nil {
		log.Println("time zone initialization failed", err)
		return
	}

	logService := internal.NewLogger(location)
	logService.SetDebugMode(conf.IsDebug)

	var database *internal.MongoDB
	if conf.Mongo.Enabled {
		database, err = internal.NewMongoClient(conf)
		if err != nil {
			log.Println("mongodb setup failed", err)
			return
		}
		logService.SetJournal(database)
		log.Println("mongodb is configured and enabled")
	} else {
		log.Println("database is disabled")
	}

	cs := station.NewChargingStation(conf, logService)
	cs.BindMetrics()

	if conf.Telegram.Enabled {
		telegramBot, err := telegram.NewBot(conf.Telegram.ApiKey, conf.Telegram.ChatId)
		if err != nil {
			log.Println("telegram bot setup failed", err)
			return
		}
		telegramBot.Bind(cs.Events())
		telegramBot.Start()
		log.Println("telegram bot is configured and enabled")
	}

	client := transport.NewWebSocketClient(conf)
	client.SetLogger(logService)
	client.SetMessageHandler(cs.HandleIncomingMessage)
	if err = client.Connect(); err != nil {
		log.Println("connection to central system failed", err)
	} else {
		cs.SetChannel(client)
	}

	if conf.Metrics.Enabled {
		go func() {
			if err := metrics.Listen(conf); err != nil {
				log.Println("metrics listener failed", err)
			}
		}()
	}

	apiServer := api.NewServer(conf, logService, cs)
	if database != nil {
		apiServer.SetJournal(database)
	}
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Println("api server stopped", err)
		}
	}()

	cs.Start()
	select {}
}
