// Package lab holds the shared vocabulary of the graphics labs: the lab
// registry and the error values every lab package returns.
//
// The labs themselves live elsewhere:
//
//   - [github.com/san-kum/gfxlab/internal/rubik]: 27-cubie arrangement and turn animation
//   - [github.com/san-kum/gfxlab/internal/geometry]: hand-authored meshes
//   - [github.com/san-kum/gfxlab/internal/objmesh]: OBJ reader
//   - [github.com/san-kum/gfxlab/internal/gui]: raylib front end
//
// # Example
//
//	reg := lab.NewRegistry()
//	info, err := reg.Get("rubik-lit")
//	if err != nil {
//		return err
//	}
//	fmt.Println(info.Title)
package lab
