package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pyre/engine"
	"github.com/plus3/pyre/gmath"
	"github.com/plus3/pyre/particle"
	"github.com/plus3/pyre/physics"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	bodyCount := flag.Int("bodies", 200, "The number of physics bodies to create.")
	maxParticles := flag.Int("particles", 4096, "The particle pool hard cap.")
	burstSize := flag.Int("burst", 64, "Particles emitted per burst.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting simulation stress test...")

	// 1. Setup scene, physics, and particles
	bounds := gmath.R(0, 0, 1920, 1080)

	scene := engine.NewScene("stress")
	phys := physics.NewSystem(gmath.V(0, 600), bounds)
	scene.AddPreStep("physics", phys.Step)

	particles := particle.NewSystem(*maxParticles)
	scene.AddPostStep("particles", func(frame *engine.UpdateFrame) {
		particles.Update(frame.DeltaTime)
	})

	// 2. Populate the scene with bouncing bodies
	log.Printf("Populating scene with %d bodies...\n", *bodyCount)
	for i := 0; i < *bodyCount; i++ {
		spawnRandomBody(scene, bounds, i)
	}
	log.Println("Population complete.")

	scenes := engine.NewSceneManager()
	scenes.Switch(scene)

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Bodies:         *bodyCount,
		ParticleCap:    *maxParticles,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			if totalUpdates%30 == 0 {
				cfg := particle.Burst(
					bounds.X+rand.Float64()*bounds.W,
					bounds.Y+rand.Float64()*bounds.H,
					*burstSize,
					particle.RGB{R: 255, G: uint8(rand.Intn(256)), B: 64},
				)
				particles.Emit(cfg)
			}

			updateStart := time.Now()
			scenes.Update(engine.ClampDelta(deltaTime.Seconds()))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			if particles.ActiveCount() > report.PeakParticles {
				report.PeakParticles = particles.ActiveCount()
			}
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func spawnRandomBody(scene *engine.Scene, bounds gmath.Rect, i int) {
	radius := 4 + rand.Float64()*10

	e := engine.NewEntity(fmt.Sprintf("body-%d", i))
	e.X = bounds.X + radius + rand.Float64()*(bounds.W-2*radius)
	e.Y = bounds.Y + radius + rand.Float64()*(bounds.H-2*radius)

	body := physics.NewBody(1+rand.Float64()*4, 0.6+rand.Float64()*0.4)
	body.VX = rand.Float64()*400 - 200
	body.VY = rand.Float64()*400 - 200
	body.SetDamping(0.05, 0)

	e.Add(body)
	e.Add(physics.NewCircleCollider(radius).SetFriction(0.2))
	scene.Add(e)
}
