// Command simrun steps the simulation headless at a fixed tick rate and logs
// the player's progress. Useful for checking stage content and tuning
// without opening a window.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/core"
)

func main() {
	stage := flag.String("stage", "meadow", "Stage to load")
	tickRate := flag.Int("tickrate", 60, "Simulation updates per second")
	ticks := flag.Uint64("ticks", 600, "Ticks to run before exiting (0 = until interrupted)")
	tuning := flag.String("tuning", "", "YAML tuning file")
	walk := flag.String("hold", "W", "Key held for the whole run (empty = none)")
	every := flag.Uint64("every", 60, "Log the player state every N ticks")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	sim := core.New(core.Options{
		Stages: assets.StageProvider(),
		Clips:  assets.AvatarSource("default"),
	})
	if err := sim.Init(*stage); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if *walk != "" {
		sim.PushEvent(components.RawEvent{Kind: components.KeyDown, Key: *walk})
	}

	loop := core.NewGameLoop(sim, *tickRate)
	loop.OnTick = func(s *core.Simulation, tick uint64) {
		if *every == 0 || tick%*every != 0 {
			return
		}
		p, ok := s.Player()
		if !ok {
			return
		}
		inv := s.Inventory()
		log.Printf("tick %d pos (%.2f, %.2f, %.2f) ground %v anim %s items %d value %d",
			tick, p.Position.X(), p.Position.Y(), p.Position.Z(), p.OnGround,
			p.Animation.Clip, inv.Items, inv.Value)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	log.Printf("Running stage %q (tick rate: %d/s, ticks: %d)", *stage, *tickRate, *ticks)
	loop.Run(*ticks)
	sim.Teardown()
}
