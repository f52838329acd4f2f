package lab

import (
	"fmt"
	"sort"
)

// Kind groups labs by the shading path they render with.
type Kind int

const (
	KindUnlit Kind = iota
	KindLit
)

func (k Kind) String() string {
	if k == KindLit {
		return "lit"
	}
	return "unlit"
}

// Info describes one lab program.
type Info struct {
	Name        string
	Title       string
	Description string
	Kind        Kind
	// Cube reports whether the lab drives a Rubik arrangement and records sessions.
	Cube bool
}

type Registry struct {
	labs map[string]Info
}

func NewRegistry() *Registry {
	r := &Registry{labs: make(map[string]Info)}

	r.add(Info{Name: "plus", Title: "Lab 1: plus polygon", Description: "flat three-quad polygon with grid strips", Kind: KindUnlit})
	r.add(Info{Name: "rubik-static", Title: "Lab 2.1: cube arrangement", Description: "27 cubies seen from a fixed camera", Kind: KindUnlit, Cube: true})
	r.add(Info{Name: "rubik", Title: "Lab 2.2: turning cube", Description: "free camera and keyboard slice turns", Kind: KindUnlit, Cube: true})
	r.add(Info{Name: "dezsa", Title: "Lab 3.1: fenced ring", Description: "two rings of boards under Phong light", Kind: KindLit})
	r.add(Info{Name: "rubik-lit", Title: "Lab 3.3: lit cube", Description: "Phong cube with panels, scramble and pulse", Kind: KindLit, Cube: true})
	r.add(Info{Name: "car", Title: "Lab 4: OBJ model", Description: "car loaded from an OBJ file", Kind: KindLit})

	return r
}

func (r *Registry) add(info Info) {
	r.labs[info.Name] = info
}

func (r *Registry) Get(name string) (Info, error) {
	info, ok := r.labs[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownLab, name)
	}
	return info, nil
}

// List returns the labs in course order.
func (r *Registry) List() []Info {
	order := map[string]int{"plus": 0, "rubik-static": 1, "rubik": 2, "dezsa": 3, "rubik-lit": 4, "car": 5}
	out := make([]Info, 0, len(r.labs))
	for _, info := range r.labs {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, iok := order[out[i].Name]
		oj, jok := order[out[j].Name]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) Names() []string {
	infos := r.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
