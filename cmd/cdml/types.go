/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

type cdmlParams struct {
	ConfigFile string
	RootDir    string
	Shallow    bool
}

// Content of the configuration file
type config struct {
	DefaultNamespace  string        `yaml:"defaultNamespace"`
	ShallowValidation bool          `yaml:"shallowValidation"`
	MaxParallelLoads  int           `yaml:"maxParallelLoads"`
	ResolvedCacheSize int           `yaml:"resolvedCacheSize"`
	MaxMonikerDepth   int           `yaml:"maxMonikerDepth"`
	CacheBytes        int           `yaml:"cacheBytes"`
	Mounts            []mountConfig `yaml:"mounts"`
}

// Storage adapter mounted to namespace
type mountConfig struct {
	Namespace string `yaml:"namespace"`
	Kind      string `yaml:"kind"`
	// Folder of local documents or bbolt database
	Root   string `yaml:"root"`
	DBName string `yaml:"dbName"`
}
