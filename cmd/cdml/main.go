/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"cdml",
		"schema corpus indexer and relationship extractor",
		args,
		ver,
		newIndexCmd(),
		newFetchCmd(),
		newRelationshipsCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
