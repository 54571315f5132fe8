package modeler

// arena allocates mesh IDs and is the only path to the renderer's
// create and dispose calls
type arena struct {
	r    Renderer
	next MeshID
	live map[MeshID]MeshKind
}

func newArena(r Renderer) *arena {
	return &arena{r: r, live: make(map[MeshID]MeshKind)}
}

func (a *arena) create(data MeshData) MeshID {
	a.next++
	id := a.next
	a.live[id] = data.Kind
	a.r.CreateMesh(id, data)
	return id
}

func (a *arena) update(id MeshID, data MeshData) {
	if _, ok := a.live[id]; !ok {
		return
	}
	a.r.UpdateMesh(id, data)
}

// dispose releases *id and clears it
func (a *arena) dispose(id *MeshID) {
	if *id == NoMesh {
		return
	}
	if _, ok := a.live[*id]; ok {
		delete(a.live, *id)
		a.r.DisposeMesh(*id)
	}
	*id = NoMesh
}

func (a *arena) disposeAll() {
	for id := range a.live {
		a.r.DisposeMesh(id)
	}
	a.live = make(map[MeshID]MeshKind)
}

func (a *arena) count(kind MeshKind) int {
	n := 0
	for _, k := range a.live {
		if k == kind {
			n++
		}
	}
	return n
}
