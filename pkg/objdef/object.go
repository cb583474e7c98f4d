/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

type object struct {
	id           ObjectID
	owner        IObject
	doc          *Document
	declaredPath string
}

func (o *object) ID() ObjectID {
	return o.id
}

func (o *object) Owner() IObject {
	return o.owner
}

func (o *object) InDocument() *Document {
	return o.doc
}

func (o *object) DeclaredPath() string {
	return o.declaredPath
}

func (o *object) AtCorpusPath() string {
	if o.doc == nil {
		return notInDocumentPath + o.declaredPath
	}
	return o.doc.AtCorpusPath() + pathSeparator + o.declaredPath
}

func (o *object) base() *object {
	return o
}

// Names of required properties which are not set
type required []string

func (r required) check(name string, present bool) required {
	if !present {
		return append(r, name)
	}
	return r
}

func refChild(r *Reference, pathFrom string, cc []child) []child {
	if r != nil {
		cc = append(cc, child{obj: r, pathFrom: pathFrom})
	}
	return cc
}

func refsChildren(rr []*Reference, pathFrom string, cc []child) []child {
	for _, r := range rr {
		cc = refChild(r, pathFrom, cc)
	}
	return cc
}
