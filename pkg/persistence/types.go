/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

type documentYAML struct {
	Imports     []importYAML     `yaml:"imports"`
	Definitions []definitionYAML `yaml:"definitions"`
}

type importYAML struct {
	CorpusPath string `yaml:"corpusPath"`
	Moniker    string `yaml:"moniker"`
}

type definitionYAML struct {
	Entity         string  `yaml:"entity"`
	Trait          string  `yaml:"trait"`
	DataType       string  `yaml:"dataType"`
	Purpose        string  `yaml:"purpose"`
	AttributeGroup string  `yaml:"attributeGroup"`
	ConstantEntity *string `yaml:"constantEntity"`

	Extends        *entityRefYAML  `yaml:"extends"`
	ExhibitsTraits []traitRefYAML  `yaml:"exhibitsTraits"`
	Attributes     []attributeYAML `yaml:"attributes"`
	Members        []attributeYAML `yaml:"members"`
	Parameters     []parameterYAML `yaml:"parameters"`
	Shape          string          `yaml:"shape"`
	Values         [][]string      `yaml:"values"`
}

type attributeYAML struct {
	Name                string         `yaml:"name"`
	DataType            string         `yaml:"dataType"`
	Purpose             string         `yaml:"purpose"`
	AppliedTraits       []traitRefYAML `yaml:"appliedTraits"`
	Entity              *entityRefYAML `yaml:"entity"`
	IsPolymorphicSource bool           `yaml:"isPolymorphicSource"`
	Group               string         `yaml:"group"`
}

type parameterYAML struct {
	Name     string     `yaml:"name"`
	DataType string     `yaml:"dataType"`
	Required bool       `yaml:"required"`
	Default  *valueYAML `yaml:"default"`
}

// Entity reference: name or projection
type entityRefYAML struct {
	Name       string
	Projection *projectionYAML
}

type projectionYAML struct {
	Source     *entityRefYAML  `yaml:"source"`
	Operations []operationYAML `yaml:"operations"`
}

type operationYAML struct {
	ReplaceAsForeignKey *struct {
		Reference   string         `yaml:"reference"`
		ReplaceWith *attributeYAML `yaml:"replaceWith"`
	} `yaml:"replaceAsForeignKey"`
	AddTypeAttribute  *attributeYAML `yaml:"addTypeAttribute"`
	ExcludeAttributes []string       `yaml:"excludeAttributes"`
	IncludeAttributes []string       `yaml:"includeAttributes"`
	RenameAttributes  *struct {
		Format  string   `yaml:"format"`
		ApplyTo []string `yaml:"applyTo"`
	} `yaml:"renameAttributes"`
}

// Trait reference: name or name with arguments
type traitRefYAML struct {
	Trait     string    `yaml:"trait"`
	Arguments []argYAML `yaml:"arguments"`
}

// Argument: scalar, inline constant entity or named value
type argYAML struct {
	Name  string
	Value valueYAML
}

// Value: scalar or inline constant entity
type valueYAML struct {
	Scalar   string
	Constant *constantYAML
}

type constantYAML struct {
	ConstantEntity string     `yaml:"constantEntity"`
	Shape          string     `yaml:"shape"`
	Values         [][]string `yaml:"values"`
}

type persistence struct{}
