/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package local

import (
	"testing"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

func TestTCK(t *testing.T) {
	istorage.TechnologyCompatibilityKit(t, New(t.TempDir()))
}
