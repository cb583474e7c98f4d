/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

func (r *entityRefYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := unmarshal(&r.Name); err == nil {
		return nil
	}
	r.Projection = &projectionYAML{}
	return unmarshal(r.Projection)
}

func (t *traitRefYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := unmarshal(&t.Trait); err == nil {
		return nil
	}
	type plain traitRefYAML
	return unmarshal((*plain)(t))
}

func (a *argYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := unmarshal(&a.Value.Scalar); err == nil {
		return nil
	}
	var named struct {
		Name  string     `yaml:"name"`
		Value *valueYAML `yaml:"value"`
	}
	if err := unmarshal(&named); err == nil && named.Value != nil {
		a.Name = named.Name
		a.Value = *named.Value
		return nil
	}
	a.Value.Constant = &constantYAML{}
	return unmarshal(a.Value.Constant)
}

func (v *valueYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := unmarshal(&v.Scalar); err == nil {
		return nil
	}
	v.Constant = &constantYAML{}
	return unmarshal(v.Constant)
}
