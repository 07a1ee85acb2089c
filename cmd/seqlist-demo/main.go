// seqlist-demo runs a YAML-described concurrent workload against a set of
// registered lists and reports the final counts. Handy for eyeballing
// policy behavior under -race.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/comalice/synclistx"
)

// Workload is the YAML description of a demo run.
type Workload struct {
	Lists []struct {
		Name   string `yaml:"name"`
		Policy string `yaml:"policy"` // exclusive | shared | transactional
		Seed   []int  `yaml:"seed"`
	} `yaml:"lists"`
	Workers int `yaml:"workers"`
	Ops     int `yaml:"ops"`
}

func main() {
	path := flag.String("workload", "workload.yaml", "path to the workload file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	wl, err := loadWorkload(*path)
	if err != nil {
		log.Fatal().Err(err).Str("path", *path).Msg("load workload")
	}
	if wl.Workers <= 0 {
		wl.Workers = 4
	}
	if wl.Ops <= 0 {
		wl.Ops = 1000
	}

	registry := synclistx.NewRegistry()
	names := make([]string, 0, len(wl.Lists))
	for _, spec := range wl.Lists {
		opt, err := policyOption(spec.Policy)
		if err != nil {
			log.Fatal().Err(err).Str("list", spec.Name).Msg("bad policy")
		}
		seed := spec.Seed
		if seed == nil {
			seed = []int{}
		}
		l, err := synclistx.FromSlice(seed, opt, synclistx.WithLogger[int](log))
		if err != nil {
			log.Fatal().Err(err).Str("list", spec.Name).Msg("create list")
		}
		synclistx.Register(registry, spec.Name, l)
		names = append(names, spec.Name)
		log.Info().Str("list", spec.Name).Str("policy", spec.Policy).
			Int("seed", len(spec.Seed)).Msg("registered")
	}
	if len(names) == 0 {
		log.Fatal().Msg("workload defines no lists")
	}

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < wl.Workers; w++ {
		g.Go(func() error {
			for i := 0; i < wl.Ops; i++ {
				l, ok := synclistx.Lookup[int](registry, names[(w+i)%len(names)])
				if !ok {
					return fmt.Errorf("list %q vanished", names[(w+i)%len(names)])
				}
				switch i % 4 {
				case 0:
					l.Add(w*wl.Ops + i)
				case 1:
					_ = l.Contains(i)
				case 2:
					l.Remove(w*wl.Ops + i - 4)
				case 3:
					for range l.All() {
						break
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("workload failed")
	}

	log.Info().Dur("elapsed", time.Since(start)).
		Int("workers", wl.Workers).Int("ops_per_worker", wl.Ops).Msg("workload done")
	for _, name := range names {
		if h, ok := registry.Get(name); ok {
			log.Info().Str("list", name).Int("len", h.Len()).Msg("final count")
		}
	}
}

func loadWorkload(path string) (Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workload{}, fmt.Errorf("read %s: %w", path, err)
	}
	var wl Workload
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return Workload{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return wl, nil
}

func policyOption(name string) (synclistx.Option[int], error) {
	switch name {
	case "exclusive":
		return synclistx.WithExclusiveLock[int](), nil
	case "shared", "":
		return synclistx.WithSharedLock[int](), nil
	case "transactional":
		return synclistx.WithTransactions[int](), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
