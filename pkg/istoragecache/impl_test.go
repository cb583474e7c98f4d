/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package istoragecache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/schemacorpus/pkg/istorage"
	"github.com/voedger/schemacorpus/pkg/istorage/mem"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	m := mem.New()
	modified := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(m.Write(ctx, "/a.cdm.yaml", []byte("v1"), modified))

	c := Provide(1024*1024, m)

	for i := 0; i < 3; i++ {
		content, err := c.Read(ctx, "/a.cdm.yaml")
		require.NoError(err)
		require.Equal("v1", string(content))
	}
	hits, misses := c.Stats()
	require.Equal(uint64(2), hits)
	require.Equal(uint64(1), misses)

	t.Run("modified content is re-read", func(t *testing.T) {
		require.NoError(m.Write(ctx, "/a.cdm.yaml", []byte("v2"), modified.Add(time.Second)))
		content, err := c.Read(ctx, "/a.cdm.yaml")
		require.NoError(err)
		require.Equal("v2", string(content))
		_, misses := c.Stats()
		require.Equal(uint64(2), misses)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := c.Read(ctx, "/absent.cdm.yaml")
		require.ErrorIs(err, istorage.ErrDocumentDoesNotExist)
		_, err = c.LastModified(ctx, "/absent.cdm.yaml")
		require.ErrorIs(err, istorage.ErrDocumentDoesNotExist)
	})

	t.Run("big content", func(t *testing.T) {
		big := strings.Repeat("x", 200*1024)
		require.NoError(m.Write(ctx, "/big.cdm.yaml", []byte(big), modified))
		for i := 0; i < 2; i++ {
			content, err := c.Read(ctx, "/big.cdm.yaml")
			require.NoError(err)
			require.Equal(big, string(content))
		}
	})

	t.Run("reset", func(t *testing.T) {
		c.Reset()
		hitsBefore, _ := c.Stats()
		_, err := c.Read(ctx, "/a.cdm.yaml")
		require.NoError(err)
		hitsAfter, _ := c.Stats()
		require.Equal(hitsBefore, hitsAfter)
	})
}
