package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"lion_slot/internal/config"
	"lion_slot/internal/config/env"
	"lion_slot/internal/logger"
	"lion_slot/internal/service/slot"

	"github.com/cheggaaa/pb/v3"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	_ "go.uber.org/automaxprocs"
)

type simConfig struct {
	configPath string
	workers    int
	batches    int
	spins      int
	seed       uint64
}

// batchResult итог одной серии спинов со ставкой 1
type batchResult struct {
	bet    float64
	payout float64
	wins   int
}

func main() {
	var cfg simConfig
	flag.StringVar(&cfg.configPath, "config", "config.yaml", "slot config with reel weights")
	flag.IntVar(&cfg.workers, "worker", 4, "number of workers")
	flag.IntVar(&cfg.batches, "batches", 100, "number of independent batches")
	flag.IntVar(&cfg.spins, "spins", 100000, "spins per batch")
	flag.Uint64Var(&cfg.seed, "seed", 0, "base seed, 0 means current time")
	flag.Parse()

	_ = config.Load(".env")
	log := logger.New(env.NewLogConfig())
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg simConfig, log *zap.Logger) error {
	if cfg.workers <= 0 || cfg.batches <= 0 || cfg.spins <= 0 {
		return fmt.Errorf("worker, batches and spins must be positive")
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	slotCfg, err := env.NewSlotConfigFromYAML(cfg.configPath)
	if err != nil {
		return err
	}
	catalog, err := slot.NewCatalog(slotCfg.SymbolWeights())
	if err != nil {
		return err
	}

	pool, err := ants.NewPool(cfg.workers)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Release()

	log.Info("simulation started",
		zap.Int("workers", cfg.workers),
		zap.Int("batches", cfg.batches),
		zap.Int("spins", cfg.spins),
		zap.Uint64("seed", cfg.seed),
	)

	results := make([]batchResult, cfg.batches)
	bar := pb.StartNew(cfg.batches * cfg.spins)
	start := time.Now()

	err = submitAll(pool, len(results), func(i int) {
		results[i] = simulateBatch(catalog, slot.NewSeededDraw(cfg.seed+uint64(i)), cfg.spins, bar)
	})
	if err != nil {
		return err
	}
	bar.Finish()

	report(catalog, results, time.Since(start))
	return nil
}

// submitAll отправляет n задач в пул и всегда дожидается уже принятых,
// даже если очередной Submit вернул ошибку
func submitAll(pool *ants.Pool, n int, job func(i int)) error {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			job(i)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit batch %d: %w", i, err)
		}
	}
	wg.Wait()
	return nil
}

func simulateBatch(catalog *slot.Catalog, draw slot.DrawFunc, spins int, bar *pb.ProgressBar) batchResult {
	const step = 1000

	population := catalog.Population()
	wager := decimal.NewFromInt(1)

	var res batchResult
	for n := 0; n < spins; n++ {
		out := slot.ResolveReels(slot.DrawReels(draw, population), wager)
		res.bet++
		if out.Won {
			res.wins++
			res.payout += out.Prize.InexactFloat64()
		}
		if (n+1)%step == 0 {
			bar.Add(step)
		}
	}
	bar.Add(spins % step)

	return res
}

func report(catalog *slot.Catalog, results []batchResult, elapsed time.Duration) {
	rtps := make([]float64, len(results))
	var total batchResult
	for i, r := range results {
		rtps[i] = r.payout / r.bet * 100
		total.bet += r.bet
		total.payout += r.payout
		total.wins += r.wins
	}

	mean, std := stat.MeanStdDev(rtps, nil)

	fmt.Printf("spins:           %.0f\n", total.bet)
	fmt.Printf("elapsed:         %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("hit rate:        %.4f%%\n", float64(total.wins)/total.bet*100)
	fmt.Printf("rtp (total):     %.4f%%\n", total.payout/total.bet*100)
	fmt.Printf("rtp (batches):   %.4f%% ± %.4f\n", mean, std)
	fmt.Printf("rtp (theory):    %.4f%%\n", catalog.TheoreticalRTP())
}
