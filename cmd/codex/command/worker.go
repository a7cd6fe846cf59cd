package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/commands"
	"github.com/pixil98/go-codex/internal/driver"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/listener"
	"github.com/pixil98/go-codex/internal/messaging"
	"github.com/pixil98/go-codex/internal/session"
	"github.com/pixil98/go-codex/internal/stats"
	service "github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the datasets and build the query engine
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}
	catalog := items.NewIndex(dict.Items)
	counter := &stats.Counter{}
	engine := stats.NewEngine(codex.New(dict, catalog), counter)

	// Wire the console pipeline
	handler, err := commands.NewHandler(engine)
	if err != nil {
		return nil, fmt.Errorf("building command handler: %w", err)
	}
	cm := listener.NewConnectionManager(session.NewManager(handler))

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Stand up the query bus
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	responder := messaging.NewResponder(natsServer, engine)

	// Setup the stats driver
	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	statsManager := stats.NewManager(counter, cfg.Stats.managerOpts(natsServer)...)
	driver := driver.NewDriver([]driver.Manager{
		statsManager,
	}, driver.WithTickLength(tick))

	// Create a worker list
	return service.WorkerList{
		"driver":    driver,
		"nats":      natsServer,
		"responder": responder,
		"listeners": &listeners,
	}, nil
}
