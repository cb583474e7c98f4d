/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TechnologyCompatibilityKit test suit for writable adapters
func TechnologyCompatibilityKit(t *testing.T, adapter IWritableAdapter) {
	t.Run("TestAdapter_WriteRead", func(t *testing.T) { testAdapter_WriteRead(t, adapter) })
	t.Run("TestAdapter_NotExists", func(t *testing.T) { testAdapter_NotExists(t, adapter) })
	t.Run("TestAdapter_Overwrite", func(t *testing.T) { testAdapter_Overwrite(t, adapter) })
}

func testAdapter_WriteRead(t *testing.T, adapter IWritableAdapter) {
	require := require.New(t)
	ctx := context.Background()

	modified := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	content := []byte("definitions: []\n")
	require.NoError(adapter.Write(ctx, "/tck/folder/doc.cdm.yaml", content, modified))

	got, err := adapter.Read(ctx, "/tck/folder/doc.cdm.yaml")
	require.NoError(err)
	require.Equal(content, got)

	m, err := adapter.LastModified(ctx, "/tck/folder/doc.cdm.yaml")
	require.NoError(err)
	require.True(modified.Equal(m), "expected %v, got %v", modified, m)
}

func testAdapter_NotExists(t *testing.T, adapter IWritableAdapter) {
	require := require.New(t)
	ctx := context.Background()

	content, err := adapter.Read(ctx, "/tck/absent.cdm.yaml")
	require.ErrorIs(err, ErrDocumentDoesNotExist)
	require.Nil(content)

	_, err = adapter.LastModified(ctx, "/tck/absent.cdm.yaml")
	require.ErrorIs(err, ErrDocumentDoesNotExist)
}

func testAdapter_Overwrite(t *testing.T, adapter IWritableAdapter) {
	require := require.New(t)
	ctx := context.Background()

	first := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	require.NoError(adapter.Write(ctx, "/tck/over.cdm.yaml", []byte("first"), first))
	require.NoError(adapter.Write(ctx, "/tck/over.cdm.yaml", []byte("second"), second))

	got, err := adapter.Read(ctx, "/tck/over.cdm.yaml")
	require.NoError(err)
	require.Equal("second", string(got))

	m, err := adapter.LastModified(ctx, "/tck/over.cdm.yaml")
	require.NoError(err)
	require.True(second.Equal(m))
}
