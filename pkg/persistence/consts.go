/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

var documentExtensions = []string{".cdm.yaml", ".cdm.yml"}
