/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

func TestTCK(t *testing.T) {
	require := require.New(t)

	a, err := Provide(ParamsType{DBDir: t.TempDir()})
	require.NoError(err)
	defer a.Close()

	istorage.TechnologyCompatibilityKit(t, a)
}

func TestReopen(t *testing.T) {
	require := require.New(t)

	params := ParamsType{DBDir: t.TempDir(), DBName: "test.db"}
	modified := time.Date(2023, 1, 2, 3, 4, 5, 6, time.UTC)

	a, err := Provide(params)
	require.NoError(err)
	require.NoError(a.Write(context.Background(), "/doc.cdm.yaml", []byte("content"), modified))
	require.NoError(a.Close())

	a, err = Provide(params)
	require.NoError(err)
	defer a.Close()

	got, err := a.Read(context.Background(), "/doc.cdm.yaml")
	require.NoError(err)
	require.Equal("content", string(got))

	m, err := a.LastModified(context.Background(), "/doc.cdm.yaml")
	require.NoError(err)
	require.Equal(modified, m)
}
