package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop steps a simulation at a fixed tick rate on its own goroutine.
// The simulation is only touched from the loop goroutine; OnTick runs there
// too, after each update.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	OnTick   func(sim *Simulation, tick uint64)

	stopChan chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called or maxTicks ticks have run. maxTicks of 0
// means no limit.
func (g *GameLoop) Run(maxTicks uint64) {
	defer close(g.done)

	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	var tick uint64
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.sim.Update(dt)
			tick++
			if g.OnTick != nil {
				g.OnTick(g.sim, tick)
			}
			if maxTicks > 0 && tick >= maxTicks {
				log.Printf("Game loop finished after %d ticks", tick)
				return
			}
		}
	}
}

// Stop ends Run and waits for it to return. Run must have been started.
// Safe to call more than once.
func (g *GameLoop) Stop() {
	g.once.Do(func() {
		close(g.stopChan)
	})
	<-g.done
}
