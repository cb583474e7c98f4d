/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Visits root and all objects it contains in depth-first order.
//
// Paths are computed starting with pathFrom. Returns true if walk was stopped by post-visit
func Walk(root IObject, pathFrom string, pre, post VisitFunc) bool {
	type frame struct {
		obj     IObject
		path    string
		entered bool
	}

	stack := []frame{{obj: root, path: root.pathFrom(pathFrom)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.entered {
			if post != nil && post(f.obj, f.path) {
				return true
			}
			continue
		}

		if pre != nil && pre(f.obj, f.path) {
			continue
		}

		f.entered = true
		stack = append(stack, f)
		cc := f.obj.children(f.path)
		for i := len(cc) - 1; i >= 0; i-- {
			c := cc[i]
			stack = append(stack, frame{obj: c.obj, path: c.obj.pathFrom(c.pathFrom)})
		}
	}
	return false
}

// Sets owner, document, declared path and identity of root and all objects it contains.
//
// Objects which already have identity keep it. nextID may be nil
func Bind(root IObject, owner IObject, doc *Document, pathFrom string, nextID func() ObjectID) {
	type frame struct {
		obj      IObject
		owner    IObject
		pathFrom string
	}

	stack := []frame{{obj: root, owner: owner, pathFrom: pathFrom}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := f.obj.base()
		b.owner = f.owner
		b.doc = doc
		path := f.obj.pathFrom(f.pathFrom)
		b.declaredPath = path
		if b.id == 0 && nextID != nil {
			b.id = nextID()
		}

		cc := f.obj.children(path)
		for i := len(cc) - 1; i >= 0; i-- {
			stack = append(stack, frame{obj: cc[i].obj, owner: f.obj, pathFrom: cc[i].pathFrom})
		}
	}
}

// Binds all document objects to the document
func (d *Document) Bind(nextID func() ObjectID) {
	Bind(d, nil, d, "", nextID)
}
