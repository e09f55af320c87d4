package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	dashboard "github.com/gnowak/dashboard"
	"github.com/gnowak/dashboard/config"
	"github.com/gnowak/dashboard/transit"
	"github.com/gnowak/dashboard/weather"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	feed := flag.String("feed", "transit", "oneshot feed: transit|weather")
	region := flag.String("region", "", "weather region code (overrides config default)")
	configPath := flag.String("config", "", "path to config.yml")
	flag.Parse()

	log := dashboard.NewLogger()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	transitSvc := transit.NewService(cfg.Transit, nil)
	weatherSvc := weather.NewService(cfg.Weather, nil)

	switch *mode {
	case "serve":
		api := dashboard.NewAPI(transitSvc, weatherSvc, dashboard.NewMetrics(), log)
		srv := dashboard.NewServer(cfg.Server.Port, api, log)
		srv.Start()
		srv.WaitForShutdown()
	case "oneshot":
		ctx := context.Background()
		var out any
		switch *feed {
		case "transit":
			alerts, err := transitSvc.Alerts(ctx)
			if err != nil {
				log.WithError(err).Fatal("transit fetch failed")
			}
			out = alerts
		case "weather":
			entries, err := weatherSvc.Entries(ctx, weatherSvc.ResolveRegion(*region))
			if err != nil {
				log.WithError(err).Fatal("weather fetch failed")
			}
			out = entries
		default:
			log.Fatalf("unknown feed %q", *feed)
		}
		buf, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.WithError(err).Fatal("marshal failed")
		}
		fmt.Println(string(buf))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
