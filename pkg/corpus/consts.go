/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

// Indexing pipeline operators, also used as diagnostic components
const (
	phase_Clear             = "clear"
	phase_CheckIntegrity    = "check-integrity"
	phase_Declare           = "declare"
	phase_PrioritizeImports = "prioritize-imports"
	phase_ResolveReferences = "resolve-references"
	phase_ResolveTraitArgs  = "resolve-trait-arguments"
	phase_Finish            = "finish"
	indexPipelineName       = "index-documents"
	component_ResolveSymbol = "resolve-symbol"
	component_FetchObject   = "fetch-object"
	component_LoadImports   = "load-imports"
	component_ResolveEntity = "resolve-entity"
	component_Registry      = "registry"
	component_EntityGraph   = "entity-graph"
)

// Definition cache kinds
const (
	cacheKind_Traits = "rtsb"
	cacheKind_Entity = "rasb"
)

const (
	cacheTagSeparator = "-"
	symbolSeparator   = "/"
)

const (
	defaultResolvedCacheSize = 1024
	defaultMaxParallelLoads  = 8
)

// Foreign key trait argument
const (
	linkedEntityParam = "entityReferences"
	linkedEntityShape = "entityGroupSet"
)

// Rename format placeholders
const (
	renameMember            = "{m}"
	renameMemberCapitalized = "{M}"
	renameOwner             = "{a}"
	renameOwnerCapitalized  = "{A}"
)
