package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"smart-house/internal/adapters/input/layout"
	"smart-house/internal/adapters/output/console"
	"smart-house/internal/domain/service"
)

func main() {
	layoutPath := flag.String("layout", "", "path to the house layout file")
	logJSON := flag.Bool("log-json", false, "emit logs as JSON")
	flag.Parse()

	log := logrus.New()
	if *logJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	path := *layoutPath
	if path == "" {
		path = os.Getenv("HOUSE_LAYOUT")
	}
	if path == "" {
		path = "layout.yaml"
	}

	svc := service.NewInventoryService(layout.NewLoader(path), console.NewSink(os.Stdout))

	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		log.WithError(err).Fatal("could not load house layout")
	}

	house := svc.House()
	log.WithFields(logrus.Fields{
		"house": house.Name(),
		"rooms": house.Len(),
	}).Info("house loaded")

	// Switch everything on, then print the readings and the full report.
	for _, room := range house.Rooms() {
		for _, device := range room.Devices() {
			switched, err := house.TurnOnDevice(room.Name(), device.Name())
			if err != nil {
				log.WithError(err).Warn("turn on failed")
				continue
			}
			if !switched {
				log.WithFields(logrus.Fields{
					"room":   room.Name(),
					"device": device.Name(),
				}).Debug("device has no power control")
			}
		}
	}

	total, err := svc.TotalPowerConsumption()
	if err != nil {
		log.WithError(err).Fatal("could not read consumption")
	}
	log.WithField("watts", total).Info("total power consumption")

	if err := svc.PublishReport(ctx); err != nil {
		log.WithError(err).Fatal("could not publish report")
	}
}
