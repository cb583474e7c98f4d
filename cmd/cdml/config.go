/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v2"

	"github.com/voedger/schemacorpus/pkg/corpus"
	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/istorage"
	"github.com/voedger/schemacorpus/pkg/istorage/bbolt"
	"github.com/voedger/schemacorpus/pkg/istorage/local"
	"github.com/voedger/schemacorpus/pkg/istorage/mem"
	"github.com/voedger/schemacorpus/pkg/istoragecache"
	"github.com/voedger/schemacorpus/pkg/persistence"
)

func initGlobalFlags(cmd *cobra.Command, params *cdmlParams) {
	cmd.Flags().StringVarP(&params.ConfigFile, "config", "c", "", "path to yaml configuration file")
	cmd.Flags().StringVarP(&params.RootDir, "root", "C", defaultRootDir, "folder mounted to the default namespace if there is no configuration file")
	cmd.Flags().BoolVar(&params.Shallow, "shallow", false, "report unresolved references as warnings")
}

// Reads configuration file. Without file the root folder is mounted to the default namespace
func readConfig(params cdmlParams) (config, error) {
	if params.ConfigFile == "" {
		return config{
			DefaultNamespace:  istorage.DefaultNamespace,
			ShallowValidation: params.Shallow,
			Mounts:            []mountConfig{{Namespace: istorage.DefaultNamespace, Kind: mountKind_Local, Root: params.RootDir}},
		}, nil
	}

	content, err := os.ReadFile(params.ConfigFile)
	if err != nil {
		return config{}, err
	}
	var cfg config
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return config{}, fmt.Errorf("%s: %w", params.ConfigFile, err)
	}
	if len(cfg.Mounts) == 0 {
		return config{}, fmt.Errorf("%s: no mounts", params.ConfigFile)
	}

	dir := filepath.Dir(params.ConfigFile)
	for i, m := range cfg.Mounts {
		if m.Root != "" && !filepath.IsAbs(m.Root) {
			cfg.Mounts[i].Root = filepath.Join(dir, m.Root)
		}
	}
	if cfg.DefaultNamespace == "" {
		cfg.DefaultNamespace = istorage.DefaultNamespace
	}
	cfg.ShallowValidation = cfg.ShallowValidation || params.Shallow
	return cfg, nil
}

// Creates corpus over mounted storages. Returned closer releases the storages
func newCorpus(cfg config) (*corpus.Corpus, *diag.Collector, io.Closer, error) {
	manager := istorage.NewManager(cfg.DefaultNamespace)
	var closers closers
	for _, m := range cfg.Mounts {
		adapter, err := newAdapter(m)
		if err != nil {
			_ = closers.Close()
			return nil, nil, nil, err
		}
		if c, ok := adapter.(io.Closer); ok {
			closers = append(closers, c)
		}
		if cfg.CacheBytes > 0 {
			adapter = istoragecache.Provide(cfg.CacheBytes, adapter)
		}
		manager.Mount(m.Namespace, adapter)
		logger.Verbose("mounted", m.Kind, m.Root, "to", m.Namespace)
	}

	params := corpus.DefaultParams()
	params.DefaultNamespace = cfg.DefaultNamespace
	params.ShallowValidation = cfg.ShallowValidation
	if cfg.MaxParallelLoads > 0 {
		params.MaxParallelLoads = cfg.MaxParallelLoads
	}
	if cfg.ResolvedCacheSize != 0 {
		params.ResolvedCacheSize = cfg.ResolvedCacheSize
	}
	params.MaxMonikerDepth = cfg.MaxMonikerDepth

	events := diag.NewCollector(diag.LoggerSink())
	return corpus.New(manager, persistence.Provide(), events, params), events, closers, nil
}

func newAdapter(m mountConfig) (istorage.IStorageAdapter, error) {
	switch m.Kind {
	case mountKind_Local, "":
		return local.New(m.Root), nil
	case mountKind_Bolt:
		return bbolt.Provide(bbolt.ParamsType{DBDir: m.Root, DBName: m.DBName})
	case mountKind_Mem:
		return mem.New(), nil
	}
	return nil, fmt.Errorf("namespace %s: unknown storage kind %q", m.Namespace, m.Kind)
}

type closers []io.Closer

func (cc closers) Close() error {
	var errs []error
	for _, c := range cc {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Returns error if errors were reported
func checkEvents(events *diag.Collector) error {
	if n := events.Count(diag.Level_Error); n > 0 {
		return fmt.Errorf("%d error(s) reported", n)
	}
	return nil
}
