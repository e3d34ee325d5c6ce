// Command generate_demo writes the demo fleet as a JSON snapshot, useful as
// a fixture for API clients.
// Usage: go run cmd/generate_demo/main.go [-out path/to/fleet.json]
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/demo"
	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

const defaultOutputPath = "./demo/fleet.json"

type snapshot struct {
	Users   []entities.UserRecord   `json:"users"`
	Reports []entities.ReportRecord `json:"reports"`
	Buses   []entities.BusRecord    `json:"buses"`
	Routes  []entities.RouteRecord  `json:"routes"`
}

func main() {
	out := flag.String("out", defaultOutputPath, "path to the JSON snapshot")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	facade := services.New()
	if err := demo.Seed(facade, log); err != nil {
		log.Fatal("failed to seed demo data", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal("failed to create output directory", zap.Error(err))
	}

	data, err := json.MarshalIndent(takeSnapshot(facade), "", "  ")
	if err != nil {
		log.Fatal("failed to encode snapshot", zap.Error(err))
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("failed to write snapshot", zap.Error(err))
	}

	log.Info("demo snapshot generated", zap.String("path", *out), zap.Any("stored", facade.Counts()))
}

func takeSnapshot(f *services.Facade) snapshot {
	var s snapshot
	for _, u := range f.Users.GetAll() {
		s.Users = append(s.Users, u.Record())
	}
	for _, r := range f.Reports.GetAll() {
		s.Reports = append(s.Reports, r.Record())
	}
	for _, b := range f.Buses.GetAll() {
		s.Buses = append(s.Buses, b.Record())
	}
	for _, r := range f.Routes.GetAll() {
		s.Routes = append(s.Routes, r.Record())
	}
	return s
}
